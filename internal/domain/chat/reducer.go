package chat

import (
	"fmt"
	"strings"
)

// Advance is the conversation reducer: one customer message in, the next
// state, a scripted reply, and possibly a support case out. It is pure;
// the caller supplies the candidate case number, which is only used when
// the transition actually opens a case.
func Advance(s State, message, caseNumber string) Transition {
	msg := strings.TrimSpace(message)

	if s.Step == StepComplete || isNewIntent(msg, s.Intent) {
		s = InitialState()
	}

	if s.Intent == IntentNone {
		return startFlow(s, msg)
	}

	switch s.Intent {
	case IntentBooking:
		return advanceBooking(s, msg)
	case IntentCancellation:
		return advanceCancellation(s, msg, caseNumber)
	case IntentTravelUpdate:
		return advanceTravelUpdate(s, msg, caseNumber)
	case IntentComplaint:
		return advanceComplaint(s, msg, caseNumber)
	default:
		return startFlow(InitialState(), msg)
	}
}

func startFlow(s State, msg string) Transition {
	intent := DetectIntent(msg)
	s.Intent = intent

	switch intent {
	case IntentBooking:
		s.Step = StepAskAirport
		return Transition{State: s, Reply: replyAskAirport}
	case IntentCancellation:
		s.Step = StepAskBookingReference
		return Transition{State: s, Reply: replyAskCancellationReference}
	case IntentTravelUpdate:
		s.Step = StepAskBookingReference
		return Transition{State: s, Reply: replyAskUpdateReference}
	case IntentComplaint:
		s.Step = StepAskComplaintDetails
		return Transition{State: s, Reply: replyAskComplaintDetails}
	case IntentGreeting:
		s.Step = StepComplete
		return Transition{State: s, Reply: replyGreeting}
	case IntentCasual:
		s.Step = StepComplete
		return Transition{State: s, Reply: replyCasual}
	default:
		s.Intent = IntentGeneral
		s.Step = StepComplete
		return Transition{State: s, Reply: replyGeneral}
	}
}

func advanceBooking(s State, msg string) Transition {
	switch s.Step {
	case StepAskAirport:
		if len(msg) <= 2 {
			return Transition{State: s, Reply: replyAskAirport}
		}
		s.Collected.Airport = msg
		s.Step = StepAskDates
		return Transition{State: s, Reply: fmt.Sprintf(
			"Perfect for %s airport! What are your travel dates (arrival and departure)?",
			s.Collected.Airport)}

	case StepAskDates:
		if len(msg) <= 5 {
			return Transition{State: s, Reply: "Please confirm your travel dates and times (arrival and departure)."}
		}
		s.Collected.Dates = msg
		s.Step = StepComplete
		return Transition{State: s, Reply: fmt.Sprintf(
			"Excellent! For %s on %s, visit comparemyparkings.co.uk to compare real-time prices across 74+ secure parking providers and make your booking. You'll find the best deals for your specific dates!",
			s.Collected.Airport, s.Collected.Dates)}

	default:
		s.Step = StepAskAirport
		return Transition{State: s, Reply: replyAskAirport}
	}
}

func advanceCancellation(s State, msg, caseNumber string) Transition {
	switch s.Step {
	case StepAskBookingReference:
		if len(msg) <= 3 {
			return Transition{State: s, Reply: "Could you please provide your booking reference?"}
		}
		s.Collected.BookingReference = msg
		s.Step = StepAskBookingDate
		return Transition{State: s, Reply: "Got it. What was the date of your original booking?"}

	case StepAskBookingDate:
		if len(msg) <= 5 {
			return Transition{State: s, Reply: "Please give me the date of your original booking."}
		}
		s.Collected.BookingDate = msg
		s.Step = StepExplainPolicy
		return Transition{State: s, Reply: fmt.Sprintf(
			"I understand you want to cancel booking %s. Our policy: cancellations more than 48 hours before drop-off receive a full refund minus a £15 admin fee; within 48 hours of drop-off bookings are non-refundable. Shall I proceed?",
			s.Collected.BookingReference)}

	case StepExplainPolicy:
		lower := strings.ToLower(msg)
		if !containsAny(lower, "yes", "proceed", "confirm") {
			s.Step = StepComplete
			return Transition{State: s, Reply: "No problem, your booking stays as it is. Is there anything else I can help you with?"}
		}
		s.Step = StepComplete
		return Transition{
			State: s,
			Reply: fmt.Sprintf(
				"Done! I've created cancellation case %s and the refund is being processed. You'll receive a confirmation email shortly. Thank you for booking with us.",
				caseNumber),
			Case: &CaseDraft{Number: caseNumber, Intent: IntentCancellation, Collected: s.Collected},
		}

	default:
		s.Step = StepAskBookingReference
		return Transition{State: s, Reply: replyAskCancellationReference}
	}
}

func advanceTravelUpdate(s State, msg, caseNumber string) Transition {
	switch s.Step {
	case StepAskBookingReference:
		if len(msg) <= 5 {
			return Transition{State: s, Reply: "Please provide your booking reference."}
		}
		s.Collected.BookingReference = msg
		s.Step = StepAskUpdateType
		return Transition{State: s, Reply: "Understood. Are you updating your arrival or your departure?"}

	case StepAskUpdateType:
		lower := strings.ToLower(msg)
		if !containsAny(lower, "departure", "arrival") {
			return Transition{State: s, Reply: "Is this for your arrival or your departure?"}
		}
		if strings.Contains(lower, "departure") {
			s.Collected.UpdateType = "departure"
		} else {
			s.Collected.UpdateType = "arrival"
		}
		s.Step = StepAskNewDate
		return Transition{State: s, Reply: "Okay, please give me the new date and time, your flight's terminal (if available), and a contact number."}

	case StepAskNewDate:
		if len(msg) <= 5 {
			return Transition{State: s, Reply: "Please give me the new date and time."}
		}
		s.Collected.NewDate = msg
		s.Step = StepComplete
		return Transition{
			State: s,
			Reply: fmt.Sprintf(
				"Thank you! I've updated your details and created case %s. Please be aware: if you stay beyond your booked time, the provider may charge an additional fee based on availability. You'll receive an updated confirmation email shortly. Safe travels!",
				caseNumber),
			Case: &CaseDraft{Number: caseNumber, Intent: IntentTravelUpdate, Collected: s.Collected},
		}

	default:
		s.Step = StepAskBookingReference
		return Transition{State: s, Reply: replyAskUpdateReference}
	}
}

func advanceComplaint(s State, msg, caseNumber string) Transition {
	switch s.Step {
	case StepAskComplaintDetails:
		if len(msg) <= 10 {
			return Transition{State: s, Reply: "Could you briefly explain what happened, with a little more detail?"}
		}
		s.Collected.ComplaintDetails = msg
		s.Collected.ComplaintCategory = CategorizeComplaint(msg)
		s.Step = StepAskBookingReferenceComplaint
		return Transition{State: s, Reply: fmt.Sprintf(
			"Thank you for explaining. Based on what you described, this sounds like a %s complaint. Could I have your booking reference so I can log it?",
			strings.ToLower(s.Collected.ComplaintCategory))}

	case StepAskBookingReferenceComplaint:
		if len(msg) <= 5 {
			return Transition{State: s, Reply: "Could I have your booking reference?"}
		}
		s.Collected.BookingReference = msg
		s.Step = StepComplete
		return Transition{
			State: s,
			Reply: fmt.Sprintf(
				"Thank you. Your complaint has been recorded under '%s'. We will forward this to the parking provider responsible for the lot. We have logged this under case %s. You will hear from us within 48 hours by email. Again, I apologize for the inconvenience.",
				s.Collected.ComplaintCategory, caseNumber),
			Case: &CaseDraft{Number: caseNumber, Intent: IntentComplaint, Collected: s.Collected},
		}

	default:
		s.Step = StepAskComplaintDetails
		return Transition{State: s, Reply: replyAskComplaintDetails}
	}
}

const (
	replyAskAirport = "Hello! I'm ParkAssist, your parking assistant. I can help you find a spot. All our parking providers are 100% verified. Which airport do you need parking at?"

	replyAskCancellationReference = "I'm sorry to hear you need to cancel. To process your cancellation, could you please provide your booking reference?"

	replyAskUpdateReference = "No problem! Let's update your booking. Please provide your booking reference."

	replyAskComplaintDetails = "I'm sorry to hear that you had an issue. To help me categorize your complaint, could you briefly explain what happened?"

	replyGreeting = "Hello! I'm ParkAssist, your parking assistant from Compare My Parkings. I can help you find and manage your airport parking across 74+ secure providers. How can I assist you today?"

	replyCasual = "I'm doing great, thanks for asking! I'm here and ready to help you with all your parking needs. What can I assist you with today?"

	replyGeneral = "Hello! I'm ParkAssist from Compare My Parkings. We compare 74+ secure parking providers across UK airports. How can I assist you with your parking needs today?"
)
