package ai

import (
	"context"
	"fmt"
	"strings"

	"parkcompare/internal/pkg/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Rephraser softens the chat widget's scripted replies with a language
// model. The step machine still decides what is said; the model only
// adjusts the phrasing, so any failure here falls back to the script.
type Rephraser struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewRephraser(ctx context.Context, cfg config.ChatConfig) (*Rephraser, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.4)

	return &Rephraser{client: client, model: model}, nil
}

func (r *Rephraser) Close() error {
	return r.client.Close()
}

const rephrasePrompt = `You are ParkAssist, the support assistant for Compare My Parkings, a UK airport parking comparison site.
Rewrite the scripted reply below in a warm, natural customer-support tone.
Keep every factual detail exactly as written: case numbers, booking references, prices, fees, URLs, and policy terms must not change.
Do not add new information, offers, or questions. Reply with the rewritten text only.

Customer message: %s

Scripted reply: %s`

// Rephrase returns a reworded version of the scripted reply. On any
// problem the caller should use the original text.
func (r *Rephraser) Rephrase(ctx context.Context, userMessage, scripted string) (string, error) {
	prompt := fmt.Sprintf(rephrasePrompt, userMessage, scripted)

	resp, err := r.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
