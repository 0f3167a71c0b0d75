package command

// fallbackReply keeps the non-empty message contract when upstream produced
// nothing usable.
const fallbackReply = "I'm here to help you customize your trading workspace! Tell me what you'd like to change."

// Response is the outbound payload: a conversational reply plus the final
// command list.
type Response struct {
	Message   string    `json:"message"`
	UIChanges []Command `json:"uiChanges"`
}

// Assemble merges the reply text and command list into the outbound payload.
// Exact-duplicate commands collapse to their first occurrence, the message is
// never empty, and uiChanges is always a non-nil list.
func Assemble(reply string, cmds []Command) Response {
	if reply == "" {
		reply = fallbackReply
	}

	deduped := make([]Command, 0, len(cmds))
	seen := make(map[string]bool, len(cmds))
	for _, c := range cmds {
		k := c.key()
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		deduped = append(deduped, c)
	}

	return Response{Message: reply, UIChanges: deduped}
}
