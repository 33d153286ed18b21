package service_test

import (
	"testing"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
)

func seedAttempt(repo *fakeAttemptRepo, userID, quizID uint, category string, score int, completed bool) {
	repo.categories[quizID] = category
	attempt := &model.Attempt{
		UserID:    userID,
		QuizID:    quizID,
		Score:     score,
		Completed: completed,
		StartedAt: time.Now(),
	}
	repo.Create(attempt)
}

func TestRecompute_AveragesCompletedAttemptsOnly(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	progressRepo := newFakeProgressRepo()
	svc := service.NewProgressService(attemptRepo, progressRepo)

	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 80, true)
	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 60, true)
	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 0, false)

	record, err := svc.Recompute(42, model.CategoryGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalAttempted != 3 {
		t.Errorf("expected 3 attempted, got %d", record.TotalAttempted)
	}
	if record.TotalCompleted != 2 {
		t.Errorf("expected 2 completed, got %d", record.TotalCompleted)
	}
	if record.AverageScore != 70.0 {
		t.Errorf("expected average 70.0, got %v", record.AverageScore)
	}
	if record.LastUpdated.IsZero() {
		t.Error("expected LastUpdated to be set")
	}
}

func TestRecompute_ZeroCompletedMeansZeroAverage(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	progressRepo := newFakeProgressRepo()
	svc := service.NewProgressService(attemptRepo, progressRepo)

	seedAttempt(attemptRepo, 42, 1, model.CategoryReading, 0, false)
	seedAttempt(attemptRepo, 42, 1, model.CategoryReading, 0, false)

	record, err := svc.Recompute(42, model.CategoryReading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalAttempted != 2 || record.TotalCompleted != 0 {
		t.Errorf("expected 2 attempted and 0 completed, got %d/%d", record.TotalAttempted, record.TotalCompleted)
	}
	if record.AverageScore != 0.0 {
		t.Errorf("expected average 0.0 with no completions, got %v", record.AverageScore)
	}
}

func TestRecompute_IgnoresOtherCategoriesAndUsers(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	progressRepo := newFakeProgressRepo()
	svc := service.NewProgressService(attemptRepo, progressRepo)

	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 100, true)
	seedAttempt(attemptRepo, 42, 2, model.CategoryVocabulary, 40, true)
	seedAttempt(attemptRepo, 7, 1, model.CategoryGrammar, 20, true)

	record, err := svc.Recompute(42, model.CategoryGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalAttempted != 1 {
		t.Errorf("expected 1 attempt in category, got %d", record.TotalAttempted)
	}
	if record.AverageScore != 100.0 {
		t.Errorf("expected average 100.0, got %v", record.AverageScore)
	}
}

func TestRecompute_OverwritesStoredRecord(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	progressRepo := newFakeProgressRepo()
	svc := service.NewProgressService(attemptRepo, progressRepo)

	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 40, true)
	if _, err := svc.Recompute(42, model.CategoryGrammar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 80, true)
	record, err := svc.Recompute(42, model.CategoryGrammar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalAttempted != 2 || record.AverageScore != 60.0 {
		t.Errorf("expected refreshed record 2 attempts avg 60.0, got %d attempts avg %v", record.TotalAttempted, record.AverageScore)
	}

	stored, _ := progressRepo.FindByUser(42)
	if len(stored) != 1 {
		t.Errorf("expected a single stored record per user+category, got %d", len(stored))
	}
}

func TestSummary_CoversEveryCategory(t *testing.T) {
	attemptRepo := newFakeAttemptRepo()
	progressRepo := newFakeProgressRepo()
	svc := service.NewProgressService(attemptRepo, progressRepo)

	seedAttempt(attemptRepo, 42, 1, model.CategoryGrammar, 90, true)

	records, err := svc.Summary(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != len(model.AllCategories()) {
		t.Fatalf("expected %d records, got %d", len(model.AllCategories()), len(records))
	}

	byCategory := make(map[string]float64)
	for _, r := range records {
		byCategory[r.Category] = r.AverageScore
	}
	if byCategory[model.CategoryGrammar] != 90.0 {
		t.Errorf("expected grammar average 90.0, got %v", byCategory[model.CategoryGrammar])
	}
	if byCategory[model.CategoryListening] != 0.0 {
		t.Errorf("expected empty category average 0.0, got %v", byCategory[model.CategoryListening])
	}
}
