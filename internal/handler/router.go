package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkcompare/internal/domain/adminuser"
	"parkcompare/internal/handler/api"
	"parkcompare/internal/handler/middleware"
	"parkcompare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	checkoutHandler *api.CheckoutHandler,
	chatHandler *api.ChatHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, checkoutHandler, chatHandler, authHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	checkoutHandler *api.CheckoutHandler,
	chatHandler *api.ChatHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public site: compare, quote, checkout, chat.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/companies", Handler: catalogHandler.ListCompanies},
			{Method: http.MethodGet, Path: "/locations", Handler: catalogHandler.ListLocations},
			{Method: http.MethodGet, Path: "/compare", Handler: catalogHandler.CompareAirport},
			{Method: http.MethodPost, Path: "/quotes", Handler: catalogHandler.CreateQuote},
			{Method: http.MethodGet, Path: "/promocodes/validate", Handler: catalogHandler.ValidatePromo},

			{Method: http.MethodPost, Path: "/payments/intent", Handler: checkoutHandler.CreatePaymentIntent},
			{Method: http.MethodPost, Path: "/bookings", Handler: checkoutHandler.CreateBooking},
			{Method: http.MethodGet, Path: "/bookings/:reference", Handler: checkoutHandler.GetBooking},
			{Method: http.MethodPost, Path: "/bookings/:reference/cancel", Handler: checkoutHandler.CancelBooking},

			{Method: http.MethodPost, Path: "/chat/messages", Handler: chatHandler.PostMessage},
			{Method: http.MethodPost, Path: "/chat/cases", Handler: chatHandler.CreateCase},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			writer := authMiddleware.RequireRoleAtLeast(adminuser.RoleOperator)

			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/companies", Handler: adminHandler.CreateCompany, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodPut, Path: "/companies/:id", Handler: adminHandler.UpdateCompany, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodDelete, Path: "/companies/:id", Handler: adminHandler.DeleteCompany, Mw: []gin.HandlerFunc{writer}},

				{Method: http.MethodPost, Path: "/locations", Handler: adminHandler.CreateLocation, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodPut, Path: "/locations/:id", Handler: adminHandler.UpdateLocation, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodDelete, Path: "/locations/:id", Handler: adminHandler.DeleteLocation, Mw: []gin.HandlerFunc{writer}},

				{Method: http.MethodGet, Path: "/promocodes", Handler: adminHandler.ListPromos},
				{Method: http.MethodPost, Path: "/promocodes", Handler: adminHandler.CreatePromo, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodPut, Path: "/promocodes/:id", Handler: adminHandler.UpdatePromo, Mw: []gin.HandlerFunc{writer}},
				{Method: http.MethodDelete, Path: "/promocodes/:id", Handler: adminHandler.DeletePromo, Mw: []gin.HandlerFunc{writer}},

				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodDelete, Path: "/bookings/:reference", Handler: adminHandler.DeleteBooking, Mw: []gin.HandlerFunc{writer}},

				{Method: http.MethodGet, Path: "/cases", Handler: adminHandler.ListCases},
				{Method: http.MethodGet, Path: "/cases/:number", Handler: adminHandler.GetCase},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
