package bootstrap

import (
	"context"
	"log/slog"

	"parkcompare/internal/infra/ai"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/usecase/commands"

	"go.uber.org/fx"
)

var ChatModule = fx.Module("chat",
	fx.Provide(
		NewReplyRephraser,
	),
)

// NewReplyRephraser wires Gemini behind the chat widget. Without an API
// key the widget still works, answering with the scripted replies.
func NewReplyRephraser(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.ReplyRephraser, error) {
	if cfg.Chat.GeminiAPIKey == "" {
		logger.Info("no Gemini API key configured, chat replies are scripted")
		return nil, nil
	}

	rephraser, err := ai.NewRephraser(context.Background(), cfg.Chat)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rephraser.Close()
		},
	})

	return rephraser, nil
}
