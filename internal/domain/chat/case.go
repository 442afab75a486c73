package chat

import (
	"fmt"
	"strings"
	"time"
)

// CaseStatus tracks a support case through the back office.
type CaseStatus string

const (
	CaseOpen     CaseStatus = "open"
	CaseResolved CaseStatus = "resolved"
)

// Case is the support record persisted when a conversation flow completes.
type Case struct {
	Number            string        `json:"caseNumber"`
	Intent            Intent        `json:"intent"`
	CaseType          string        `json:"caseType"`
	Priority          string        `json:"priority"`
	Status            CaseStatus    `json:"status"`
	Collected         CollectedData `json:"collectedData"`
	UserMessage       string        `json:"userMessage,omitempty"`
	EstimatedResponse string        `json:"estimatedResponse"`
	CustomerEmail     string        `json:"customerEmail,omitempty"`
	CustomerPhone     string        `json:"customerPhone,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// NewCaseNumber builds a trackable case number: intent prefix, millisecond
// timestamp, random suffix. The suffix is supplied by the caller so the
// function stays deterministic under test.
func NewCaseNumber(intent Intent, now time.Time, suffix string) string {
	return fmt.Sprintf("%s-%d-%s", casePrefix(intent), now.UnixMilli(), strings.ToUpper(suffix))
}

func casePrefix(intent Intent) string {
	switch intent {
	case IntentBooking:
		return "BK"
	case IntentCancellation:
		return "CAN"
	case IntentTravelUpdate:
		return "TU"
	case IntentComplaint:
		return "COMP"
	default:
		return "GEN"
	}
}

// CaseType is the human-readable label shown in the admin back office.
func CaseType(intent Intent) string {
	switch intent {
	case IntentBooking:
		return "Booking Inquiry"
	case IntentCancellation:
		return "Cancellation Request"
	case IntentTravelUpdate:
		return "Travel Update"
	case IntentComplaint:
		return "Customer Complaint"
	default:
		return "General Inquiry"
	}
}

// ResolutionTime is the response window promised to the customer.
func ResolutionTime(intent Intent) string {
	switch intent {
	case IntentBooking:
		return "immediate"
	case IntentTravelUpdate:
		return "6 hours"
	case IntentComplaint:
		return "48 hours"
	default:
		return "24 hours"
	}
}
