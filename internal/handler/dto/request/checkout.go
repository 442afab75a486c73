package request

import (
	"strings"
	"time"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// QuoteRequest prices a stay for one company. The same shape backs the
// payment-intent endpoint, where the server recomputes the amount instead
// of trusting the page.
type QuoteRequest struct {
	CompanyID    uuid.UUID `json:"companyId" binding:"required"`
	StartDate    string    `json:"startDate" binding:"required"`
	EndDate      string    `json:"endDate" binding:"required"`
	VehicleCount int       `json:"vehicleCount"`
	PromoCode    string    `json:"promoCode"`
}

func (r QuoteRequest) ToParams() (queries.QuoteParams, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return queries.QuoteParams{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return queries.QuoteParams{}, err
	}

	return queries.QuoteParams{
		StartDate:    start,
		EndDate:      end,
		VehicleCount: r.VehicleCount,
		PromoCode:    strings.TrimSpace(r.PromoCode),
	}, nil
}

type CustomerRequest struct {
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	ContactNumber      string `json:"contactNumber" binding:"required"`
	DepartureTerminal  string `json:"departureTerminal"`
	FlightNumber       string `json:"flightNumber"`
	ArrivalTerminal    string `json:"arrivalTerminal"`
	ReturnFlightNumber string `json:"returnFlightNumber"`
	Instruction        string `json:"instruction"`
}

func (r CustomerRequest) ToDomain() booking.CustomerDetails {
	return booking.CustomerDetails{
		FirstName:          strings.TrimSpace(r.FirstName),
		LastName:           strings.TrimSpace(r.LastName),
		Email:              strings.TrimSpace(r.Email),
		ContactNumber:      strings.TrimSpace(r.ContactNumber),
		DepartureTerminal:  r.DepartureTerminal,
		FlightNumber:       r.FlightNumber,
		ArrivalTerminal:    r.ArrivalTerminal,
		ReturnFlightNumber: r.ReturnFlightNumber,
		Instruction:        r.Instruction,
	}
}

// CreateBookingRequest finalizes a paid checkout. The quote fields are
// recomputed server-side; only customer details, vehicles and the payment
// intent are taken at face value.
type CreateBookingRequest struct {
	CompanyID       uuid.UUID       `json:"companyId" binding:"required"`
	StartDate       string          `json:"startDate" binding:"required"`
	EndDate         string          `json:"endDate" binding:"required"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	Terminal        string          `json:"terminal"`
	Customer        CustomerRequest `json:"customer" binding:"required"`
	Vehicles        []string        `json:"vehicles" binding:"required,min=1,max=3"`
	PromoCode       string          `json:"promoCode"`
	PaymentIntentID string          `json:"paymentIntentId" binding:"required"`
}

func (r CreateBookingRequest) ToStay() (booking.Stay, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return booking.Stay{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return booking.Stay{}, err
	}

	return booking.Stay{
		StartDate: start,
		EndDate:   end,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Terminal:  r.Terminal,
	}, nil
}

func (r CreateBookingRequest) ToQuoteParams() (queries.QuoteParams, error) {
	return QuoteRequest{
		CompanyID:    r.CompanyID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		VehicleCount: len(r.Vehicles),
		PromoCode:    r.PromoCode,
	}.ToParams()
}
