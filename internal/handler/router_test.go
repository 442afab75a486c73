//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"parkcompare/internal/domain/adminuser"
	"parkcompare/internal/handler"
	"parkcompare/internal/handler/api"
	"parkcompare/internal/handler/middleware"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/pkg/jwt"
	"parkcompare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Routing and middleware behavior only; the handlers themselves are
// covered in their own suites and are never reached here.
type RouterTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	handler.NewRouter(
		s.router,
		config.NewTestConfig(),
		api.NewCatalogHandler(nil, nil),
		api.NewCheckoutHandler(nil, nil, nil),
		api.NewChatHandler(nil),
		api.NewAuthHandler(nil),
		api.NewAdminHandler(nil, nil, nil, nil),
		middleware.NewAuthMiddleware(s.jwtService),
	)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) token(role adminuser.Role) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), role)
	require.NoError(s.T(), err)
	return token
}

func (s *RouterTestSuite) TestHealthCheck() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, "")

	var response map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("ok", response["status"])
}

func (s *RouterTestSuite) TestAdminRequiresAuth() {
	s.Run("no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("expired token", func() {
		expired := jwt.NewService("test-secret", -time.Hour)
		token, err := expired.GenerateToken(uuid.New(), adminuser.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *RouterTestSuite) TestAdminMutationsRequireOperator() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/companies",
		map[string]any{"name": "SkyPark", "airport": "Heathrow"}, s.token(adminuser.RoleViewer))

	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
}

func (s *RouterTestSuite) TestMeRequiresAuth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/nope", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}
