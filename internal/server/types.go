package server

import (
	"amy/internal/layout"
	"amy/internal/session"
)

// ChatRequest is the inbound chat payload. The layout snapshot arrives fresh
// on every call; history is optional either way (caller-supplied wins over
// the server-side store).
type ChatRequest struct {
	Message             string              `json:"message"`
	LayoutState         *layout.Snapshot    `json:"layoutState"`
	UserContext         *layout.UserContext `json:"userContext,omitempty"`
	ConversationHistory []session.Turn      `json:"conversationHistory,omitempty"`
}

// ErrorResponse is the body of a 4xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body of the banner/health/reset replies.
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Message string `json:"message,omitempty"`
}
