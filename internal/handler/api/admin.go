package api

import (
	"errors"
	"net/http"

	reqdto "parkcompare/internal/handler/dto/request"
	resdto "parkcompare/internal/handler/dto/response"
	"parkcompare/internal/usecase/commands"
	"parkcompare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler is the back office: catalog CRUD plus booking and support
// case oversight.
type AdminHandler struct {
	catalogCmds commands.CatalogCommands
	bookingCmds commands.BookingCommands
	catalog     queries.CatalogQueries
	bookings    queries.BookingQueries
}

func NewAdminHandler(
	catalogCmds commands.CatalogCommands,
	bookingCmds commands.BookingCommands,
	catalog queries.CatalogQueries,
	bookings queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		catalogCmds: catalogCmds,
		bookingCmds: bookingCmds,
		catalog:     catalog,
		bookings:    bookings,
	}
}

// @Summary Create a company
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/companies [post]
func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	company, err := h.catalogCmds.CreateCompany(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCompany(company))
}

// @Summary Update a company
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body reqdto.CompanyRequest true "Company"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/companies/{id} [put]
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	company, err := h.catalogCmds.UpdateCompany(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompany(company))
}

// @Summary Delete a company
// @Tags admin
// @Param id path string true "Company ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/companies/{id} [delete]
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogCmds.DeleteCompany(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a location
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /admin/locations [post]
func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	location, err := h.catalogCmds.CreateLocation(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLocation(location))
}

// @Summary Update a location
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body reqdto.LocationRequest true "Location"
// @Success 200 {object} resdto.LocationResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/locations/{id} [put]
func (h *AdminHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	location, err := h.catalogCmds.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocation(location))
}

// @Summary Delete a location
// @Tags admin
// @Param id path string true "Location ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/locations/{id} [delete]
func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogCmds.DeleteLocation(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List promo codes
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.PromoResponse
// @Security BearerAuth
// @Router /admin/promocodes [get]
func (h *AdminHandler) ListPromos(c *gin.Context) {
	promos, err := h.catalog.AllPromos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromos(promos))
}

// @Summary Create a promo code
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.PromoRequest true "Promo code"
// @Success 201 {object} resdto.PromoResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /admin/promocodes [post]
func (h *AdminHandler) CreatePromo(c *gin.Context) {
	var req reqdto.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.catalogCmds.CreatePromo(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromo(p))
}

// @Summary Update a promo code
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Promo ID"
// @Param request body reqdto.PromoRequest true "Promo code"
// @Success 200 {object} resdto.PromoResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /admin/promocodes/{id} [put]
func (h *AdminHandler) UpdatePromo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.catalogCmds.UpdatePromo(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromo(p))
}

// @Summary Delete a promo code
// @Tags admin
// @Param id path string true "Promo ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/promocodes/{id} [delete]
func (h *AdminHandler) DeletePromo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogCmds.DeletePromo(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Security BearerAuth
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Delete a booking
// @Tags admin
// @Param reference path string true "Booking reference"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/bookings/{reference} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.bookingCmds.DeleteBooking(c.Request.Context(), c.Param("reference")); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
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
	c.Status(http.StatusNoContent)
}

// @Summary List support cases
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.CaseResponse
// @Security BearerAuth
// @Router /admin/cases [get]
func (h *AdminHandler) ListCases(c *gin.Context) {
	cases, err := h.bookings.AllCases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCases(cases))
}

// @Summary Get a support case
// @Tags admin
// @Produce json
// @Param number path string true "Case number"
// @Success 200 {object} resdto.CaseResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/cases/{number} [get]
func (h *AdminHandler) GetCase(c *gin.Context) {
	found, err := h.bookings.CaseByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Case not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCase(found))
}

func (h *AdminHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input",
		})
	case errors.Is(err, commands.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Company not found",
		})
	case errors.Is(err, commands.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Location not found",
		})
	case errors.Is(err, commands.ErrPromoNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Promo code not found",
		})
	case errors.Is(err, commands.ErrDuplicatePromo):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Promo code already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
