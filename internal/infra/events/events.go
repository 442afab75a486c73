package events

import "time"

// BookingConfirmed is published once payment has captured and the booking
// document is saved. The notification worker turns it into a confirmation
// email; the payload is self-contained so the worker never reads the store.
type BookingConfirmed struct {
	Reference      string    `json:"reference"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	ParkingName    string    `json:"parkingName"`
	Airport        string    `json:"airport"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DurationDays   int       `json:"durationDays"`
	VehicleCount   int       `json:"vehicleCount"`
	OriginalTotal  float64   `json:"originalTotal"`
	DiscountAmount float64   `json:"discountAmount"`
	FinalTotal     float64   `json:"finalTotal"`
	PromoCode      string    `json:"promoCode,omitempty"`
	ConfirmedAt    time.Time `json:"confirmedAt"`
}
