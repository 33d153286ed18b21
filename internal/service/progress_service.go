package service

import (
	"fmt"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProgressService recomputes per-category progress rollups from the full
// attempt history. Recomputing from source each time, instead of patching
// the stored record, keeps counts and averages from drifting.
type ProgressService interface {
	Recompute(userID uint, category string) (*dto.ProgressRecordDTO, error)
	Summary(userID uint) ([]dto.ProgressRecordDTO, error)
}

type progressService struct {
	attemptRepo  repository.AttemptRepository
	progressRepo repository.ProgressRepository
}

func NewProgressService(attemptRepo repository.AttemptRepository, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{attemptRepo: attemptRepo, progressRepo: progressRepo}
}

// Recompute pulls every attempt of the user in the category and overwrites
// the stored record wholesale. The average covers completed attempts only
// and is defined as 0 when none are completed.
func (s *progressService) Recompute(userID uint, category string) (*dto.ProgressRecordDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndCategory(userID, category)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("category", category).Msg("Recompute: failed to fetch attempts")
		return nil, fmt.Errorf("error fetching attempts for category %q: %w", category, err)
	}

	completed := 0
	scoreSum := 0
	for _, attempt := range attempts {
		if attempt.Completed {
			completed++
			scoreSum += attempt.Score
		}
	}

	average := 0.0
	if completed > 0 {
		average = float64(scoreSum) / float64(completed)
	}

	record := &model.ProgressRecord{
		UserID:         userID,
		Category:       category,
		TotalAttempted: len(attempts),
		TotalCompleted: completed,
		AverageScore:   average,
		LastUpdated:    time.Now(),
	}
	if err := s.progressRepo.Upsert(record); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("category", category).Msg("Recompute: failed to store progress record")
		return nil, fmt.Errorf("error storing progress record: %w", err)
	}

	return &dto.ProgressRecordDTO{
		Category:       record.Category,
		TotalAttempted: record.TotalAttempted,
		TotalCompleted: record.TotalCompleted,
		AverageScore:   record.AverageScore,
		LastUpdated:    record.LastUpdated,
	}, nil
}

// Summary recomputes and returns the user's progress for every category.
func (s *progressService) Summary(userID uint) ([]dto.ProgressRecordDTO, error) {
	records := make([]dto.ProgressRecordDTO, 0, len(model.AllCategories()))
	for _, category := range model.AllCategories() {
		record, err := s.Recompute(userID, category)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}
