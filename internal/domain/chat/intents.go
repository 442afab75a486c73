package chat

import "strings"

// DetectIntent maps a free-text message onto a primary intent by keyword.
// Actionable intents win over greetings, so "hi, I want to cancel" starts
// the cancellation flow rather than greeting back.
func DetectIntent(message string) Intent {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "how are you"):
		return IntentCasual
	case containsAny(msg, "cancel", "refund"):
		return IntentCancellation
	case containsAny(msg, "extend", "update", "change my booking", "stay longer", "more time"):
		return IntentTravelUpdate
	case containsAny(msg, "complaint", "issue", "problem", "damage", "late"):
		return IntentComplaint
	case containsAny(msg, "book", "reserve", "parking", "spot"):
		return IntentBooking
	case containsAny(msg, "hello", "hi", "hey"):
		return IntentGreeting
	default:
		return IntentGeneral
	}
}

// isNewIntent reports whether the message is trying to start a different
// flow while another one is mid-way. Only actionable keywords count; a
// message that merely answers the current question must not reset the flow.
func isNewIntent(message string, current Intent) bool {
	if current == IntentNone {
		return false
	}
	detected := DetectIntent(message)
	switch detected {
	case IntentBooking, IntentCancellation, IntentTravelUpdate, IntentComplaint:
		return detected != current
	default:
		return false
	}
}

// Complaint categories the provider is accountable for.
const (
	CategoryCarDamage     = "Car Damage"
	CategoryStaffBehavior = "Staff Behavior"
	CategoryLatePickup    = "Late Pickup/Dropoff"
	CategoryPenalties     = "Tickets & Penalties"
	CategoryOther         = "Other"
)

// CategorizeComplaint buckets a complaint description by keyword.
func CategorizeComplaint(details string) string {
	text := strings.ToLower(details)

	switch {
	case containsAny(text, "scratch", "dent", "damage", "broken"):
		return CategoryCarDamage
	case containsAny(text, "rude", "behavior", "staff", "attitude", "driver"):
		return CategoryStaffBehavior
	case containsAny(text, "late", "wait", "delay", "pickup", "drop"):
		return CategoryLatePickup
	case containsAny(text, "ticket", "fine", "penalty", "charge"):
		return CategoryPenalties
	default:
		return CategoryOther
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
