package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dictionary"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/rs/zerolog/log"
)

// grammarCorrections pairs a common learner mistake with its correction.
// Kept as an ordered slice so the first matching rule always wins.
var grammarCorrections = []struct {
	mistake    string
	correction string
}{
	{"i goed", "I went"},
	{"i has", "I have"},
	{"i is", "I am"},
	{"they is", "they are"},
	{"she have", "she has"},
	{"he have", "he has"},
	{"we was", "we were"},
	{"they was", "they were"},
}

const suggestPrefix = "suggest "

// ChatbotService answers learner messages with grammar corrections and
// vocabulary suggestions. Gemini handles corrections when configured; the
// rule table covers the rest.
type ChatbotService interface {
	Reply(ctx context.Context, message string) dto.ChatReplyDTO
}

type chatbotService struct {
	llm  GeminiLLMService
	dict *dictionary.Service
}

func NewChatbotService(llm GeminiLLMService, dict *dictionary.Service) ChatbotService {
	return &chatbotService{llm: llm, dict: dict}
}

func (s *chatbotService) Reply(ctx context.Context, message string) dto.ChatReplyDTO {
	lower := strings.ToLower(strings.TrimSpace(message))

	if lower == strings.TrimSpace(suggestPrefix) {
		return s.suggest(ctx, "")
	}
	if word, ok := strings.CutPrefix(lower, suggestPrefix); ok {
		return s.suggest(ctx, strings.TrimSpace(word))
	}

	if s.llm != nil && s.llm.Available() {
		reply, err := s.llm.CorrectGrammar(ctx, message)
		if err == nil {
			return dto.ChatReplyDTO{Response: reply}
		}
		log.Warn().Err(err).Msg("Gemini correction failed, falling back to rule table")
	}

	return s.correctByRules(message)
}

func (s *chatbotService) correctByRules(message string) dto.ChatReplyDTO {
	lower := strings.ToLower(message)
	for _, rule := range grammarCorrections {
		if strings.Contains(lower, rule.mistake) {
			corrected := strings.ReplaceAll(lower, rule.mistake, rule.correction)
			return dto.ChatReplyDTO{Response: fmt.Sprintf("Correction: %s", corrected)}
		}
	}
	return dto.ChatReplyDTO{Response: "Your English looks good!"}
}

// suggest looks the word up and offers its synonyms as vocabulary to study.
func (s *chatbotService) suggest(ctx context.Context, word string) dto.ChatReplyDTO {
	if word == "" {
		return dto.ChatReplyDTO{Response: "Tell me a word to suggest vocabulary for, like: suggest happy"}
	}

	entry := s.dict.Lookup(ctx, word)
	if len(entry.Synonyms) == 0 {
		return dto.ChatReplyDTO{
			Response: fmt.Sprintf("I could not find synonyms for %q, but here is its definition: %s", entry.Word, entry.Definition),
		}
	}
	return dto.ChatReplyDTO{
		Response:    fmt.Sprintf("Here are some words related to %q you could study:", entry.Word),
		Suggestions: entry.Synonyms,
	}
}
