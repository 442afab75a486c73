package response

import (
	"time"

	"parkcompare/internal/domain/chat"
	"parkcompare/internal/usecase/commands"
)

type ChatMessageResponse struct {
	Reply      string     `json:"reply"`
	State      chat.State `json:"state"`
	CaseNumber string     `json:"caseNumber,omitempty"`
}

func FromChatResult(r *commands.ChatResult) *ChatMessageResponse {
	return &ChatMessageResponse{
		Reply:      r.Reply,
		State:      r.State,
		CaseNumber: r.CaseNumber,
	}
}

type CaseResponse struct {
	CaseNumber        string             `json:"caseNumber"`
	Intent            string             `json:"intent"`
	CaseType          string             `json:"caseType"`
	Priority          string             `json:"priority"`
	Status            string             `json:"status"`
	Collected         chat.CollectedData `json:"collectedData"`
	EstimatedResponse string             `json:"estimatedResponse"`
	CreatedAt         time.Time          `json:"createdAt"`
}

func FromCase(c *chat.Case) *CaseResponse {
	return &CaseResponse{
		CaseNumber:        c.Number,
		Intent:            string(c.Intent),
		CaseType:          c.CaseType,
		Priority:          c.Priority,
		Status:            string(c.Status),
		Collected:         c.Collected,
		EstimatedResponse: c.EstimatedResponse,
		CreatedAt:         c.CreatedAt,
	}
}

func FromCases(cases []*chat.Case) []*CaseResponse {
	out := make([]*CaseResponse, len(cases))
	for i, c := range cases {
		out[i] = FromCase(c)
	}
	return out
}
