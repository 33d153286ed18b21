package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService corrects English text with Gemini. It is optional: when
// no API key is configured the service reports itself unavailable and the
// chatbot falls back to its rule table.
type GeminiLLMService interface {
	Available() bool
	CorrectGrammar(ctx context.Context, text string) (string, error)
}

type geminiLLMService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{model: model, cfg: cfg}, nil
}

func (s *geminiLLMService) Available() bool {
	return s.model != nil
}

func (s *geminiLLMService) CorrectGrammar(ctx context.Context, text string) (string, error) {
	if s.model == nil {
		return "", fmt.Errorf("gemini service is not configured")
	}

	prompt := fmt.Sprintf(
		"You are an English teacher. Correct the grammar of the learner's sentence below. "+
			"If the sentence is already correct, reply exactly: Your English looks good! "+
			"Otherwise reply with: Correction: <the corrected sentence>\n\nSentence: %s",
		text,
	)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini GenerateContent failed")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return reply, nil
}
