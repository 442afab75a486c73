package request

import "parkcompare/internal/domain/chat"

// ChatMessageRequest carries one widget message plus the conversation
// state from the previous reply. A missing state starts a fresh
// conversation.
type ChatMessageRequest struct {
	Message string      `json:"message" binding:"required"`
	State   *chat.State `json:"state"`
}

func (r ChatMessageRequest) CurrentState() chat.State {
	if r.State == nil {
		return chat.InitialState()
	}
	return *r.State
}

// CreateCaseRequest opens a support case directly, used when the widget
// hands off without completing a flow.
type CreateCaseRequest struct {
	Intent        string             `json:"intent" binding:"required"`
	Message       string             `json:"message"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhone string             `json:"customerPhone"`
	Collected     chat.CollectedData `json:"collectedData"`
}
