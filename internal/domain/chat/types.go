package chat

// Intent is the customer's detected goal for the conversation. Each intent
// owns its own step table; there is no fallthrough between intents.
type Intent string

const (
	IntentNone         Intent = ""
	IntentBooking      Intent = "booking"
	IntentCancellation Intent = "cancellation"
	IntentTravelUpdate Intent = "travel_update"
	IntentComplaint    Intent = "complaint"
	IntentGreeting     Intent = "greeting"
	IntentCasual       Intent = "casual"
	IntentGeneral      Intent = "general"
)

// Step identifies where the conversation is inside its intent's flow.
type Step string

const (
	StepInitial  Step = "initial"
	StepComplete Step = "complete"

	// booking
	StepAskAirport Step = "ask_airport"
	StepAskDates   Step = "ask_dates"

	// cancellation
	StepAskBookingReference Step = "ask_booking_reference"
	StepAskBookingDate      Step = "ask_booking_date"
	StepExplainPolicy       Step = "explain_cancellation_policy"

	// travel update
	StepAskUpdateType Step = "ask_update_type"
	StepAskNewDate    Step = "ask_new_date"

	// complaint
	StepAskComplaintDetails          Step = "ask_complaint_details"
	StepAskBookingReferenceComplaint Step = "ask_booking_reference_complaint"
)

// CollectedData is everything gathered from the customer over one flow.
type CollectedData struct {
	Airport           string `json:"airport,omitempty"`
	Dates             string `json:"dates,omitempty"`
	BookingReference  string `json:"bookingReference,omitempty"`
	BookingDate       string `json:"bookingDate,omitempty"`
	UpdateType        string `json:"updateType,omitempty"`
	NewDate           string `json:"newDate,omitempty"`
	ComplaintDetails  string `json:"complaintDetails,omitempty"`
	ComplaintCategory string `json:"complaintCategory,omitempty"`
}

// State is the whole conversation state, passed by value through the
// reducer and round-tripped to the widget between messages.
type State struct {
	Intent    Intent        `json:"intent"`
	Step      Step          `json:"step"`
	Collected CollectedData `json:"collectedData"`
}

func InitialState() State {
	return State{Intent: IntentNone, Step: StepInitial}
}

// CaseDraft describes a support case the reducer decided to open. The
// caller persists it and already supplied the case number.
type CaseDraft struct {
	Number    string
	Intent    Intent
	Collected CollectedData
}

// Transition is the result of advancing the conversation by one customer
// message.
type Transition struct {
	State State
	Reply string
	Case  *CaseDraft
}
