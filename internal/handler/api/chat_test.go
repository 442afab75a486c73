//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"parkcompare/internal/domain/chat"
	"parkcompare/internal/handler/api"
	reqdto "parkcompare/internal/handler/dto/request"
	resdto "parkcompare/internal/handler/dto/response"
	"parkcompare/internal/usecase/commands"
	"parkcompare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockChatCommands struct {
	mock.Mock
}

func (m *mockChatCommands) HandleMessage(ctx context.Context, req reqdto.ChatMessageRequest) (*commands.ChatResult, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*commands.ChatResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatCommands) CreateCase(ctx context.Context, req reqdto.CreateCaseRequest) (*chat.Case, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*chat.Case), args.Error(1)
	}
	return nil, args.Error(1)
}

type ChatHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	chat   *mockChatCommands
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.chat = new(mockChatCommands)
	handler := api.NewChatHandler(s.chat)

	s.router.POST("/api/chat/messages", handler.PostMessage)
	s.router.POST("/api/chat/cases", handler.CreateCase)
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestPostMessage() {
	s.Run("returns the reply and the next conversation state", func() {
		s.chat.On("HandleMessage", mock.Anything, mock.Anything).
			Return(&commands.ChatResult{
				Reply: "Hello! I'm ParkAssist. How can I help today?",
				State: chat.State{Intent: chat.IntentGreeting},
			}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/chat/messages",
			map[string]any{"message": "hello"}, "")

		var response resdto.ChatMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(chat.IntentGreeting, response.State.Intent)
		s.Contains(response.Reply, "ParkAssist")
		s.Empty(response.CaseNumber)
	})

	s.Run("empty body", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/chat/messages",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		s.chat.AssertNotCalled(s.T(), "HandleMessage", mock.Anything, mock.Anything)
	})
}

func (s *ChatHandlerTestSuite) TestCreateCase() {
	body := map[string]any{
		"intent":        "complaint",
		"message":       "my car came back scratched",
		"customerEmail": "jo@example.com",
	}

	s.Run("created", func() {
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		s.chat.On("CreateCase", mock.Anything, mock.Anything).
			Return(&chat.Case{
				Number:            "COMP-1750000000000-X7K2",
				Intent:            chat.IntentComplaint,
				CaseType:          "Customer Complaint",
				Priority:          "high",
				Status:            chat.CaseOpen,
				EstimatedResponse: "48 hours",
				CreatedAt:         now,
			}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/chat/cases", body, "")

		var response resdto.CaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("COMP-1750000000000-X7K2", response.CaseNumber)
		s.Equal("Customer Complaint", response.CaseType)
		s.Equal("high", response.Priority)
	})

	s.Run("unknown intent", func() {
		s.chat.On("CreateCase", mock.Anything, mock.Anything).
			Return(nil, commands.ErrInvalidCaseIntent).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/chat/cases", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown case intent")
	})
}
