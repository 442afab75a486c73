package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidDates  = errors.New("end date must not be before start date")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CustomerDetails is what the checkout form collects about the person
// booking. Flight fields are optional extras used by meet-and-greet
// providers.
type CustomerDetails struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	ContactNumber      string `json:"contactNumber"`
	DepartureTerminal  string `json:"departureTerminal,omitempty"`
	FlightNumber       string `json:"flightNumber,omitempty"`
	ArrivalTerminal    string `json:"arrivalTerminal,omitempty"`
	ReturnFlightNumber string `json:"returnFlightNumber,omitempty"`
	Instruction        string `json:"instruction,omitempty"`
}

func (c CustomerDetails) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Stay is the parking window the customer searched for.
type Stay struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Terminal  string    `json:"terminal,omitempty"`
}

// Booking is the finalized record persisted to the key-value store once
// payment succeeds. Fields are exported for JSON marshalling; the aggregate
// is write-once apart from status changes.
type Booking struct {
	Reference       Reference       `json:"reference"`
	CompanyID       uuid.UUID       `json:"companyId"`
	ParkingName     string          `json:"parkingName"`
	Airport         string          `json:"airport"`
	Customer        CustomerDetails `json:"customer"`
	Vehicles        []VehicleEntry  `json:"vehicles"`
	Stay            Stay            `json:"stay"`
	DurationDays    int             `json:"durationDays"`
	Price           PriceBreakdown  `json:"price"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (b *Booking) Cancel(now time.Time) error {
	if b.Status == StatusCancelled {
		return ErrInvalidStatus
	}
	b.Status = StatusCancelled
	b.UpdatedAt = now
	return nil
}
