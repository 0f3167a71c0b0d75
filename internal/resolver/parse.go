package resolver

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"amy/internal/command"
	"amy/internal/shared/jsonx"
)

// FallbackReason labels why the backend output was discarded.
type FallbackReason string

const (
	ReasonBackendError FallbackReason = "backend_error"
	ReasonTimeout      FallbackReason = "timeout"
	ReasonEmptyContent FallbackReason = "empty_content"
	ReasonMalformed    FallbackReason = "malformed_json"
	ReasonEmptyMessage FallbackReason = "empty_message"
)

// parsedReply is a backend reply that conformed to the schema.
type parsedReply struct {
	Message   string        `json:"message"`
	UIChanges []command.Raw `json:"uiChanges"`
}

// parseReply validates the backend's text output against the reply schema.
// The failure case is a value, not an error path: callers route it to the
// deterministic fallback.
func parseReply(content string) (*parsedReply, FallbackReason) {
	trimmed := stripFences(strings.TrimSpace(content))
	if trimmed == "" {
		return nil, ReasonEmptyContent
	}

	var reply parsedReply
	if err := jsonx.Unmarshal([]byte(trimmed), &reply); err != nil {
		// Models truncate and mis-quote; try a repair pass before giving up.
		repaired, repairErr := jsonrepair.JSONRepair(trimmed)
		if repairErr != nil {
			return nil, ReasonMalformed
		}
		reply = parsedReply{}
		if err := jsonx.Unmarshal([]byte(repaired), &reply); err != nil {
			return nil, ReasonMalformed
		}
	}

	if strings.TrimSpace(reply.Message) == "" {
		return nil, ReasonEmptyMessage
	}
	return &reply, ""
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
