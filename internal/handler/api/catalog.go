package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "parkcompare/internal/handler/dto/request"
	resdto "parkcompare/internal/handler/dto/response"
	"parkcompare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public compare pages: companies by airport,
// airport list, quotes, and inline promo validation.
type CatalogHandler struct {
	catalog queries.CatalogQueries
	quotes  queries.QuoteQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, quotes queries.QuoteQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, quotes: quotes}
}

// @Summary List companies
// @Description List parking providers, optionally filtered by airport
// @Tags catalog
// @Produce json
// @Param airport query string false "Airport name"
// @Success 200 {array} resdto.CompanyResponse
// @Router /companies [get]
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	airport := c.Query("airport")

	var err error
	var companies = []*resdto.CompanyResponse{}
	if airport != "" {
		list, qerr := h.catalog.CompaniesByAirport(c.Request.Context(), airport)
		companies, err = resdto.FromCompanies(list), qerr
	} else {
		list, qerr := h.catalog.AllCompanies(c.Request.Context())
		companies, err = resdto.FromCompanies(list), qerr
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// @Summary List locations
// @Description List airports served by the site
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalog.AllLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocations(locations))
}

// @Summary Quote a stay
// @Description Price one company for a stay, or compare all companies at an airport
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *CatalogHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	quote, err := h.quotes.QuoteCompany(c.Request.Context(), req.CompanyID, params)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Company not found",
			})
		case errors.Is(err, queries.ErrUnpriceable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Company has no pricing configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Compare an airport
// @Description Quote every provider at an airport for the same stay
// @Tags catalog
// @Produce json
// @Param airport query string true "Airport name"
// @Param startDate query string true "Drop-off date (YYYY-MM-DD)"
// @Param endDate query string true "Pick-up date (YYYY-MM-DD)"
// @Param vehicleCount query int false "Number of vehicles"
// @Success 200 {array} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /compare [get]
func (h *CatalogHandler) CompareAirport(c *gin.Context) {
	airport := c.Query("airport")
	if airport == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "airport is required",
		})
		return
	}

	req := reqdto.QuoteRequest{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		PromoCode: c.Query("promoCode"),
	}
	if countStr := c.Query("vehicleCount"); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "vehicleCount must be a number",
			})
			return
		}
		req.VehicleCount = count
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	quotes, err := h.quotes.CompareAirport(c.Request.Context(), airport, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuotes(quotes))
}

// @Summary Validate a promo code
// @Description Validate a promo code against a pre-discount total
// @Tags catalog
// @Produce json
// @Param code query string true "Promo code"
// @Param total query number true "Pre-discount total in pounds"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Router /promocodes/validate [get]
func (h *CatalogHandler) ValidatePromo(c *gin.Context) {
	code := c.Query("code")
	totalStr := c.Query("total")
	if code == "" || totalStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "code and total are required",
		})
		return
	}

	total, err := strconv.ParseFloat(totalStr, 64)
	if err != nil || total < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "total must be a non-negative number",
		})
		return
	}

	result, err := h.quotes.ValidatePromo(c.Request.Context(), code, total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoResult(result))
}
