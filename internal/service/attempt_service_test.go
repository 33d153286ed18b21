package service_test

import (
	"errors"
	"testing"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
)

func newAttemptServiceUnderTest() (service.AttemptService, *fakeQuizRepo, *fakeAttemptRepo, *fakeLessonRepo, *fakeActivityRepo) {
	quizRepo := newFakeQuizRepo()
	attemptRepo := newFakeAttemptRepo()
	lessonRepo := newFakeLessonRepo()
	activityRepo := newFakeActivityRepo()
	svc := service.NewAttemptService(quizRepo, attemptRepo, lessonRepo, activityRepo, service.NewQuizGrader())
	return svc, quizRepo, attemptRepo, lessonRepo, activityRepo
}

func correctSubmission(quizID uint, quizRepo *fakeQuizRepo) []dto.SubmittedAnswerDTO {
	quiz, _ := quizRepo.FindByIDWithQuestions(quizID)
	var answers []dto.SubmittedAnswerDTO
	for _, q := range quiz.Questions {
		for _, a := range q.Answers {
			if a.IsCorrect {
				answers = append(answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, AnswerID: a.ID})
			}
		}
	}
	return answers
}

func TestStartAttempt_CreatesNewAttempt(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(3)
	quizRepo.Create(quiz)

	attempt, err := svc.StartAttempt(quiz.ID, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.ID == 0 {
		t.Error("expected attempt to get an ID")
	}
	if attempt.Completed {
		t.Error("new attempt should not be completed")
	}
	if attempt.UserID != 42 || attempt.QuizID != quiz.ID {
		t.Errorf("attempt has wrong owner: user %d quiz %d", attempt.UserID, attempt.QuizID)
	}
}

func TestStartAttempt_ReusesIncompleteAttempt(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(3)
	quizRepo.Create(quiz)

	first, err := svc.StartAttempt(quiz.ID, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.StartAttempt(quiz.ID, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected the incomplete attempt %d to be reused, got new attempt %d", first.ID, second.ID)
	}
}

func TestStartAttempt_UnknownQuiz(t *testing.T) {
	svc, _, _, _, _ := newAttemptServiceUnderTest()

	if _, err := svc.StartAttempt(99, 42); err == nil {
		t.Error("expected error for unknown quiz")
	}
}

func TestSubmitAttempt_GradesAndFinalizes(t *testing.T) {
	svc, quizRepo, attemptRepo, lessonRepo, activityRepo := newAttemptServiceUnderTest()
	quiz := buildQuiz(4)
	quizRepo.Create(quiz)

	attempt, err := svc.StartAttempt(quiz.ID, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.SubmitAttempt(quiz.ID, attempt.ID, 42, correctSubmission(quiz.ID, quizRepo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("expected a perfect score to pass")
	}
	if result.CompletedAt == nil {
		t.Error("expected completion time to be set")
	}

	stored, _ := attemptRepo.FindByID(attempt.ID)
	if !stored.Completed || stored.Score != 100 {
		t.Errorf("stored attempt not finalized: completed=%v score=%d", stored.Completed, stored.Score)
	}

	activities, _ := activityRepo.FindAllByUser(42)
	if len(activities) != 1 {
		t.Fatalf("expected 1 learning activity, got %d", len(activities))
	}
	if activities[0].Category != quiz.Category || activities[0].Score != 100 {
		t.Errorf("activity has wrong category %q or score %d", activities[0].Category, activities[0].Score)
	}

	lessons, _ := lessonRepo.FindAllByUser(42)
	if len(lessons) != 1 || lessons[0].LessonName != quiz.Title {
		t.Errorf("expected completed lesson %q, got %+v", quiz.Title, lessons)
	}
}

func TestSubmitAttempt_PartialScoreBelowPassMark(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(4) // pass mark 70
	quizRepo.Create(quiz)

	attempt, _ := svc.StartAttempt(quiz.ID, 42)
	answers := correctSubmission(quiz.ID, quizRepo)[:2] // 2 of 4 correct

	result, err := svc.SubmitAttempt(quiz.ID, attempt.ID, 42, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Score != 50 {
		t.Errorf("expected score 50, got %d", result.Score)
	}
	if result.Passed {
		t.Error("expected score 50 to fail a 70 pass mark")
	}
}

func TestSubmitAttempt_SecondSubmissionConflicts(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(3)
	quizRepo.Create(quiz)

	attempt, _ := svc.StartAttempt(quiz.ID, 42)
	answers := correctSubmission(quiz.ID, quizRepo)

	if _, err := svc.SubmitAttempt(quiz.ID, attempt.ID, 42, answers); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	_, err := svc.SubmitAttempt(quiz.ID, attempt.ID, 42, answers)
	if !errors.Is(err, repository.ErrAttemptAlreadyCompleted) {
		t.Errorf("expected ErrAttemptAlreadyCompleted, got %v", err)
	}
}

func TestSubmitAttempt_WrongUserRejected(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(3)
	quizRepo.Create(quiz)

	attempt, _ := svc.StartAttempt(quiz.ID, 42)

	if _, err := svc.SubmitAttempt(quiz.ID, attempt.ID, 7, nil); err == nil {
		t.Error("expected error submitting another user's attempt")
	}
}

func TestSubmitAttempt_RepeatCompletionKeepsFirstLessonScore(t *testing.T) {
	svc, quizRepo, _, lessonRepo, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(4)
	quizRepo.Create(quiz)

	first, _ := svc.StartAttempt(quiz.ID, 42)
	if _, err := svc.SubmitAttempt(quiz.ID, first.ID, 42, correctSubmission(quiz.ID, quizRepo)[:2]); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	second, _ := svc.StartAttempt(quiz.ID, 42)
	if second.ID == first.ID {
		t.Fatal("expected a fresh attempt after completion")
	}
	if _, err := svc.SubmitAttempt(quiz.ID, second.ID, 42, correctSubmission(quiz.ID, quizRepo)); err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	lessons, _ := lessonRepo.FindAllByUser(42)
	if len(lessons) != 1 {
		t.Fatalf("expected a single completed-lesson record, got %d", len(lessons))
	}
	if lessons[0].Score != 50 {
		t.Errorf("expected first completion's score 50 to stick, got %d", lessons[0].Score)
	}
}

func TestGetUserAttempts(t *testing.T) {
	svc, quizRepo, _, _, _ := newAttemptServiceUnderTest()
	quiz := buildQuiz(3)
	quizRepo.Create(quiz)

	attempt, _ := svc.StartAttempt(quiz.ID, 42)
	svc.SubmitAttempt(quiz.ID, attempt.ID, 42, correctSubmission(quiz.ID, quizRepo))
	svc.StartAttempt(quiz.ID, 42)

	attempts, err := svc.GetUserAttempts(quiz.ID, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(attempts))
	}

	other, err := svc.GetUserAttempts(quiz.ID, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no attempts for another user, got %d", len(other))
	}
}
