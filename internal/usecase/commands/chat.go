package commands

import (
	"context"
	"crypto/rand"
	"log/slog"

	"parkcompare/internal/domain/chat"
	reqdto "parkcompare/internal/handler/dto/request"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/pkg/errs"
)

var ErrInvalidCaseIntent = errs.New("invalid case intent")

type ChatResult struct {
	State      chat.State
	Reply      string
	CaseNumber string
	Case       *chat.Case
}

type ChatCommands interface {
	HandleMessage(ctx context.Context, req reqdto.ChatMessageRequest) (*ChatResult, error)
	CreateCase(ctx context.Context, req reqdto.CreateCaseRequest) (*chat.Case, error)
}

type chatCommandsImpl struct {
	cases     CaseWriter
	rephraser ReplyRephraser
	clock     clock.Clock
	logger    *slog.Logger
}

// NewChatCommands wires the widget conversation flow. rephraser may be
// nil, in which case scripted replies go out as written.
func NewChatCommands(cases CaseWriter, rephraser ReplyRephraser, clk clock.Clock, logger *slog.Logger) ChatCommands {
	return &chatCommandsImpl{
		cases:     cases,
		rephraser: rephraser,
		clock:     clk,
		logger:    logger,
	}
}

// HandleMessage advances the conversation one turn. The candidate case
// number is generated up front so the reducer stays a pure function; it
// is only spent when a case actually opens.
func (c *chatCommandsImpl) HandleMessage(ctx context.Context, req reqdto.ChatMessageRequest) (*ChatResult, error) {
	state := req.CurrentState()
	candidate := chat.NewCaseNumber(state.Intent, c.clock.Now(), caseSuffix())

	transition := chat.Advance(state, req.Message, candidate)

	result := &ChatResult{
		State: transition.State,
		Reply: c.finalReply(ctx, req.Message, transition.Reply),
	}

	if transition.Case != nil {
		persisted, err := c.persistCase(ctx, transition.Case, req.Message)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.CaseNumber = persisted.Number
		result.Case = persisted
	}
	return result, nil
}

// CreateCase opens a support case outside the step machine, e.g. when an
// operator escalates manually from the widget.
func (c *chatCommandsImpl) CreateCase(ctx context.Context, req reqdto.CreateCaseRequest) (*chat.Case, error) {
	intent := chat.Intent(req.Intent)
	switch intent {
	case chat.IntentBooking, chat.IntentCancellation, chat.IntentTravelUpdate, chat.IntentComplaint, chat.IntentGeneral:
	default:
		return nil, ErrInvalidCaseIntent
	}

	now := c.clock.Now()
	persisted := &chat.Case{
		Number:            chat.NewCaseNumber(intent, now, caseSuffix()),
		Intent:            intent,
		CaseType:          chat.CaseType(intent),
		Priority:          casePriority(intent),
		Status:            chat.CaseOpen,
		Collected:         req.Collected,
		UserMessage:       req.Message,
		EstimatedResponse: chat.ResolutionTime(intent),
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := c.cases.Save(ctx, persisted); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return persisted, nil
}

func (c *chatCommandsImpl) persistCase(ctx context.Context, draft *chat.CaseDraft, userMessage string) (*chat.Case, error) {
	now := c.clock.Now()
	persisted := &chat.Case{
		Number:            draft.Number,
		Intent:            draft.Intent,
		CaseType:          chat.CaseType(draft.Intent),
		Priority:          casePriority(draft.Intent),
		Status:            chat.CaseOpen,
		Collected:         draft.Collected,
		UserMessage:       userMessage,
		EstimatedResponse: chat.ResolutionTime(draft.Intent),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := c.cases.Save(ctx, persisted); err != nil {
		return nil, err
	}
	return persisted, nil
}

// finalReply runs the optional rephraser, falling back to the script on
// any failure so the widget always answers.
func (c *chatCommandsImpl) finalReply(ctx context.Context, userMessage, scripted string) string {
	if c.rephraser == nil {
		return scripted
	}
	rephrased, err := c.rephraser.Rephrase(ctx, userMessage, scripted)
	if err != nil {
		c.logger.Warn("reply rephrasing failed, using script", slog.String("error", err.Error()))
		return scripted
	}
	return rephrased
}

func casePriority(intent chat.Intent) string {
	switch intent {
	case chat.IntentComplaint:
		return "high"
	case chat.IntentCancellation, chat.IntentTravelUpdate:
		return "medium"
	default:
		return "low"
	}
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func caseSuffix() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
