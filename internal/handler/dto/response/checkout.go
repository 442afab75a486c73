package response

import (
	"time"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/infra/payment"
	"parkcompare/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	CompanyID      uuid.UUID `json:"companyId"`
	ParkingName    string    `json:"parkingName"`
	Airport        string    `json:"airport"`
	DurationDays   int       `json:"durationDays"`
	VehicleCount   int       `json:"vehicleCount"`
	BasePrice      float64   `json:"basePrice"`
	OriginalTotal  float64   `json:"originalTotal"`
	DiscountAmount float64   `json:"discountAmount"`
	FinalTotal     float64   `json:"finalTotal"`
	PromoApplied   bool      `json:"promoApplied"`
	PromoCode      string    `json:"promoCode,omitempty"`
	PromoMessage   string    `json:"promoMessage,omitempty"`
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	return &QuoteResponse{
		CompanyID:      q.CompanyID,
		ParkingName:    q.ParkingName,
		Airport:        q.Airport,
		DurationDays:   q.DurationDays,
		VehicleCount:   q.VehicleCount,
		BasePrice:      q.BasePrice,
		OriginalTotal:  q.OriginalTotal,
		DiscountAmount: q.DiscountAmount,
		FinalTotal:     q.FinalTotal,
		PromoApplied:   q.PromoApplied,
		PromoCode:      q.PromoCode,
		PromoMessage:   q.PromoMessage,
	}
}

func FromQuotes(quotes []*queries.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

type PaymentIntentResponse struct {
	PaymentIntentID string         `json:"paymentIntentId"`
	ClientSecret    string         `json:"clientSecret"`
	Amount          int64          `json:"amount"`
	Currency        string         `json:"currency"`
	Quote           *QuoteResponse `json:"quote"`
}

func FromPaymentIntent(intent *payment.Intent, quote *queries.Quote) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Quote:           FromQuote(quote),
	}
}

type VehicleResponse struct {
	Registration  string `json:"registration"`
	PositionIndex int    `json:"positionIndex"`
}

type BookingResponse struct {
	Reference      string            `json:"reference"`
	CompanyID      uuid.UUID         `json:"companyId"`
	ParkingName    string            `json:"parkingName"`
	Airport        string            `json:"airport"`
	Customer       CustomerResponse  `json:"customer"`
	Vehicles       []VehicleResponse `json:"vehicles"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	StartTime      string            `json:"startTime,omitempty"`
	EndTime        string            `json:"endTime,omitempty"`
	Terminal       string            `json:"terminal,omitempty"`
	DurationDays   int               `json:"durationDays"`
	OriginalTotal  float64           `json:"originalTotal"`
	DiscountAmount float64           `json:"discountAmount"`
	FinalTotal     float64           `json:"finalTotal"`
	PromoCode      string            `json:"promoCode,omitempty"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type CustomerResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	vehicles := make([]VehicleResponse, len(b.Vehicles))
	for i, v := range b.Vehicles {
		vehicles[i] = VehicleResponse{Registration: v.Registration, PositionIndex: v.PositionIndex}
	}

	return &BookingResponse{
		Reference:   b.Reference.String(),
		CompanyID:   b.CompanyID,
		ParkingName: b.ParkingName,
		Airport:     b.Airport,
		Customer: CustomerResponse{
			FirstName:     b.Customer.FirstName,
			LastName:      b.Customer.LastName,
			Email:         b.Customer.Email,
			ContactNumber: b.Customer.ContactNumber,
		},
		Vehicles:       vehicles,
		StartDate:      b.Stay.StartDate,
		EndDate:        b.Stay.EndDate,
		StartTime:      b.Stay.StartTime,
		EndTime:        b.Stay.EndTime,
		Terminal:       b.Stay.Terminal,
		DurationDays:   b.DurationDays,
		OriginalTotal:  b.Price.OriginalTotal,
		DiscountAmount: b.Price.DiscountAmount,
		FinalTotal:     b.Price.FinalTotal,
		PromoCode:      b.Price.PromoCode,
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
	}
}

func FromBookings(bookings []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromBooking(b)
	}
	return out
}
