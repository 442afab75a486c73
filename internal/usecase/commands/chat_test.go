//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"parkcompare/internal/domain/chat"
	reqdto "parkcompare/internal/handler/dto/request"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/usecase/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockCaseWriter struct {
	mock.Mock
}

func (m *mockCaseWriter) Save(ctx context.Context, c *chat.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type mockRephraser struct {
	mock.Mock
}

func (m *mockRephraser) Rephrase(ctx context.Context, userMessage, scripted string) (string, error) {
	args := m.Called(ctx, userMessage, scripted)
	return args.String(0), args.Error(1)
}

type ChatCommandsTestSuite struct {
	suite.Suite
	cases *mockCaseWriter
	now   time.Time
}

func (s *ChatCommandsTestSuite) SetupTest() {
	s.cases = new(mockCaseWriter)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *ChatCommandsTestSuite) newCommands(rephraser commands.ReplyRephraser) commands.ChatCommands {
	logger := slog.New(slog.DiscardHandler)
	return commands.NewChatCommands(s.cases, rephraser, clock.NewMockClock(s.now), logger)
}

func TestChatCommandsSuite(t *testing.T) {
	suite.Run(t, new(ChatCommandsTestSuite))
}

func (s *ChatCommandsTestSuite) TestHandleMessage() {
	s.Run("greeting opens no case", func() {
		chatCmds := s.newCommands(nil)

		result, err := chatCmds.HandleMessage(context.Background(), reqdto.ChatMessageRequest{Message: "hello"})
		s.Require().NoError(err)

		s.Equal(chat.IntentGreeting, result.State.Intent)
		s.Empty(result.CaseNumber)
		s.Nil(result.Case)
		s.cases.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
	})

	s.Run("completed cancellation flow persists a case", func() {
		chatCmds := s.newCommands(nil)
		s.cases.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		state := chat.State{
			Intent: chat.IntentCancellation,
			Step:   chat.StepExplainPolicy,
			Collected: chat.CollectedData{
				BookingReference: "PC12345ABC",
				BookingDate:      "1st of June",
			},
		}
		result, err := chatCmds.HandleMessage(context.Background(), reqdto.ChatMessageRequest{
			Message: "yes please proceed",
			State:   &state,
		})
		s.Require().NoError(err)

		s.Require().NotNil(result.Case)
		s.True(strings.HasPrefix(result.CaseNumber, "CAN-"), "case number %q", result.CaseNumber)
		s.Equal("Cancellation Request", result.Case.CaseType)
		s.Equal("medium", result.Case.Priority)
		s.Equal(chat.CaseOpen, result.Case.Status)
		s.Equal("PC12345ABC", result.Case.Collected.BookingReference)
		s.Contains(result.Reply, result.CaseNumber)
		s.cases.AssertExpectations(s.T())
	})

	s.Run("store failure surfaces", func() {
		chatCmds := s.newCommands(nil)
		s.cases.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		state := chat.State{Intent: chat.IntentCancellation, Step: chat.StepExplainPolicy}
		_, err := chatCmds.HandleMessage(context.Background(), reqdto.ChatMessageRequest{
			Message: "yes please proceed",
			State:   &state,
		})
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("rephrased reply replaces the script", func() {
		rephraser := new(mockRephraser)
		rephraser.On("Rephrase", mock.Anything, "hello", mock.Anything).
			Return("Hi there! How can I help with your parking today?", nil).Once()
		chatCmds := s.newCommands(rephraser)

		result, err := chatCmds.HandleMessage(context.Background(), reqdto.ChatMessageRequest{Message: "hello"})
		s.Require().NoError(err)
		s.Equal("Hi there! How can I help with your parking today?", result.Reply)
	})

	s.Run("rephraser failure falls back to the script", func() {
		rephraser := new(mockRephraser)
		rephraser.On("Rephrase", mock.Anything, "hello", mock.Anything).
			Return("", errors.New("quota exceeded")).Once()
		chatCmds := s.newCommands(rephraser)

		result, err := chatCmds.HandleMessage(context.Background(), reqdto.ChatMessageRequest{Message: "hello"})
		s.Require().NoError(err)
		s.Contains(result.Reply, "ParkAssist")
	})
}

func (s *ChatCommandsTestSuite) TestCreateCase() {
	s.Run("opens a case for a known intent", func() {
		chatCmds := s.newCommands(nil)
		s.cases.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		created, err := chatCmds.CreateCase(context.Background(), reqdto.CreateCaseRequest{
			Intent:        "complaint",
			Message:       "my car came back scratched",
			CustomerEmail: "jo@example.com",
		})
		s.Require().NoError(err)

		s.True(strings.HasPrefix(created.Number, "COMP-"))
		s.Equal("Customer Complaint", created.CaseType)
		s.Equal("high", created.Priority)
		s.Equal("48 hours", created.EstimatedResponse)
		s.Equal(s.now, created.CreatedAt)
	})

	s.Run("rejects an unknown intent", func() {
		chatCmds := s.newCommands(nil)

		_, err := chatCmds.CreateCase(context.Background(), reqdto.CreateCaseRequest{Intent: "gibberish"})
		s.ErrorIs(err, commands.ErrInvalidCaseIntent)
	})
}
