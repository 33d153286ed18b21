package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dictionary"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// VocabularyService serves the letter-based vocabulary browser, single word
// lookups, and the user's saved favorites.
type VocabularyService interface {
	Topics() []dto.TopicDTO
	WordsForLetter(ctx context.Context, letter string, userID uint) ([]dto.WordDTO, error)
	LookupWord(ctx context.Context, word string, userID uint) (*dto.WordDTO, error)
	SaveFavorite(req dto.SaveWordDTO) (*dto.SavedWordDTO, error)
	Favorites(userID uint) ([]dto.SavedWordDTO, error)
	ToggleMastered(userID uint, word string) (*dto.SavedWordDTO, error)
}

type vocabularyService struct {
	dict          *dictionary.Service
	savedWordRepo repository.SavedWordRepository
}

func NewVocabularyService(dict *dictionary.Service, savedWordRepo repository.SavedWordRepository) VocabularyService {
	return &vocabularyService{dict: dict, savedWordRepo: savedWordRepo}
}

func (s *vocabularyService) Topics() []dto.TopicDTO {
	letters := dictionary.Letters()
	topics := make([]dto.TopicDTO, 0, len(letters))
	for _, letter := range letters {
		topics = append(topics, dto.TopicDTO{
			Topic: letter,
			Count: len(dictionary.SampleWordsForLetter(letter)),
		})
	}
	return topics
}

// WordsForLetter merges saved words starting with the letter and a handful
// of curated sample words, resolving definitions through the dictionary
// lookup path. Fewer samples are fetched when saved words already cover the
// letter.
func (s *vocabularyService) WordsForLetter(ctx context.Context, letter string, userID uint) ([]dto.WordDTO, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return nil, fmt.Errorf("invalid topic letter %q", letter)
	}

	savedSet, err := s.savedWordSet(userID)
	if err != nil {
		return nil, err
	}

	dbWords, err := s.savedWordRepo.FindByPrefix(letter)
	if err != nil {
		log.Error().Err(err).Str("letter", letter).Msg("WordsForLetter: failed to fetch saved words")
		return nil, fmt.Errorf("error fetching words for letter %q: %w", letter, err)
	}

	words := make([]dto.WordDTO, 0, len(dbWords))
	existing := make(map[string]bool, len(dbWords))
	for _, w := range dbWords {
		key := strings.ToLower(w.Word)
		if existing[key] {
			continue
		}
		existing[key] = true
		words = append(words, dto.WordDTO{
			Word:       w.Word,
			Definition: w.Definition,
			Example:    w.Example,
			IsSaved:    savedSet[key],
		})
	}

	maxSamples := 5
	if len(words) > 0 {
		maxSamples = 3
	}

	fetched := 0
	for _, sample := range dictionary.SampleWordsForLetter(letter) {
		if fetched == maxSamples {
			break
		}
		if existing[strings.ToLower(sample)] {
			continue
		}
		fetched++
		entry := s.dict.Lookup(ctx, sample)
		words = append(words, wordDTOFromEntry(entry, savedSet[strings.ToLower(sample)]))
	}

	return words, nil
}

func (s *vocabularyService) LookupWord(ctx context.Context, word string, userID uint) (*dto.WordDTO, error) {
	entry := s.dict.Lookup(ctx, word)

	saved := false
	if userID != 0 {
		_, err := s.savedWordRepo.FindByUserAndWord(userID, entry.Word)
		switch {
		case err == nil:
			saved = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			// not saved
		default:
			return nil, fmt.Errorf("error checking saved word %q: %w", entry.Word, err)
		}
	}

	result := wordDTOFromEntry(entry, saved)
	return &result, nil
}

// SaveFavorite stores a word in the user's favorites. Saving a word that is
// already there updates its definition and example in place.
func (s *vocabularyService) SaveFavorite(req dto.SaveWordDTO) (*dto.SavedWordDTO, error) {
	existing, err := s.savedWordRepo.FindByUserAndWord(req.UserID, req.Word)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing favorite %q: %w", req.Word, err)
	}

	var saved *model.SavedWord
	if existing != nil {
		existing.Definition = req.Definition
		existing.Example = req.Example
		if err := s.savedWordRepo.Update(existing); err != nil {
			log.Error().Err(err).Str("word", req.Word).Msg("SaveFavorite: failed to update favorite")
			return nil, fmt.Errorf("error updating favorite %q: %w", req.Word, err)
		}
		saved = existing
	} else {
		saved = &model.SavedWord{
			UserID:     req.UserID,
			Word:       req.Word,
			Definition: req.Definition,
			Example:    req.Example,
		}
		if err := s.savedWordRepo.Create(saved); err != nil {
			log.Error().Err(err).Str("word", req.Word).Msg("SaveFavorite: failed to create favorite")
			return nil, fmt.Errorf("error saving favorite %q: %w", req.Word, err)
		}
	}

	var resp dto.SavedWordDTO
	if err := copier.Copy(&resp, saved); err != nil {
		return nil, fmt.Errorf("error preparing favorite response: %w", err)
	}
	return &resp, nil
}

func (s *vocabularyService) Favorites(userID uint) ([]dto.SavedWordDTO, error) {
	favorites, err := s.savedWordRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Favorites: repository error")
		return nil, fmt.Errorf("error fetching favorites: %w", err)
	}

	dtos := make([]dto.SavedWordDTO, 0, len(favorites))
	for _, favorite := range favorites {
		var item dto.SavedWordDTO
		if err := copier.Copy(&item, &favorite); err != nil {
			log.Error().Err(err).Uint("savedWordID", favorite.ID).Msg("Favorites: error copying to DTO")
			continue
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// ToggleMastered flips the mastered flag on one of the user's favorites.
func (s *vocabularyService) ToggleMastered(userID uint, word string) (*dto.SavedWordDTO, error) {
	saved, err := s.savedWordRepo.FindByUserAndWord(userID, word)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Str("word", word).Msg("ToggleMastered: favorite not found")
		return nil, fmt.Errorf("favorite %q not found: %w", word, err)
	}

	saved.Mastered = !saved.Mastered
	if err := s.savedWordRepo.Update(saved); err != nil {
		log.Error().Err(err).Str("word", word).Msg("ToggleMastered: failed to update favorite")
		return nil, fmt.Errorf("error updating favorite %q: %w", word, err)
	}

	var resp dto.SavedWordDTO
	if err := copier.Copy(&resp, saved); err != nil {
		return nil, fmt.Errorf("error preparing favorite response: %w", err)
	}
	return &resp, nil
}

func (s *vocabularyService) savedWordSet(userID uint) (map[string]bool, error) {
	set := make(map[string]bool)
	if userID == 0 {
		return set, nil
	}
	saved, err := s.savedWordRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching saved words: %w", err)
	}
	for _, w := range saved {
		set[strings.ToLower(w.Word)] = true
	}
	return set, nil
}

func wordDTOFromEntry(entry dictionary.Entry, saved bool) dto.WordDTO {
	return dto.WordDTO{
		Word:          entry.Word,
		Definition:    entry.Definition,
		Example:       entry.Example,
		PartOfSpeech:  entry.PartOfSpeech,
		Synonyms:      entry.Synonyms,
		Pronunciation: entry.Pronunciation,
		AudioURL:      entry.AudioURL,
		IsSaved:       saved,
	}
}
