package api

import (
	"errors"
	"net/http"

	reqdto "parkcompare/internal/handler/dto/request"
	resdto "parkcompare/internal/handler/dto/response"
	"parkcompare/internal/usecase/commands"
	"parkcompare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout    commands.CheckoutCommands
	bookingCmds commands.BookingCommands
	bookings    queries.BookingQueries
}

func NewCheckoutHandler(
	checkout commands.CheckoutCommands,
	bookingCmds commands.BookingCommands,
	bookings queries.BookingQueries,
) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, bookingCmds: bookingCmds, bookings: bookings}
}

// @Summary Create a payment intent
// @Description Recompute the quote server-side and open a Stripe payment intent
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Stay to pay for"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/intent [post]
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkout.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBookingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking input",
			})
		case errors.Is(err, queries.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Company not found",
			})
		case errors.Is(err, commands.ErrUnpriceableCompany):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Company has no pricing configured",
			})
		case errors.Is(err, commands.ErrPaymentProviderFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentIntent(result.Intent, result.Quote))
}

// @Summary Finalize a booking
// @Description Verify the captured payment and persist the booking
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking details"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *CheckoutHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	b, err := h.checkout.FinalizeBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBookingInput),
			errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking input",
			})
		case errors.Is(err, queries.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Company not found",
			})
		case errors.Is(err, commands.ErrUnpriceableCompany):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Company has no pricing configured",
			})
		case errors.Is(err, commands.ErrPaymentNotConfirmed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment has not been confirmed",
			})
		case errors.Is(err, commands.ErrPaymentProviderFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Look up a booking
// @Description Fetch a booking by its reference for the confirmation page
// @Tags checkout
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *CheckoutHandler) GetBooking(c *gin.Context) {
	b, err := h.bookings.ByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Cancel a booking
// @Description Cancel a confirmed booking by reference
// @Tags checkout
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/cancel [post]
func (h *CheckoutHandler) CancelBooking(c *gin.Context) {
	b, err := h.bookingCmds.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
