package service_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uint]*model.Quiz), nextID: 1}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = r.nextID
	r.nextID++
	answerID := uint(1)
	for i := range quiz.Questions {
		quiz.Questions[i].ID = uint(i + 1)
		quiz.Questions[i].QuizID = quiz.ID
		for j := range quiz.Questions[i].Answers {
			quiz.Questions[i].Answers[j].ID = answerID
			quiz.Questions[i].Answers[j].QuestionID = quiz.Questions[i].ID
			answerID++
		}
	}
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *fakeQuizRepo) FindAllWithQuestionCount() ([]struct {
	model.Quiz
	QuestionCount int
}, error) {
	results := make([]struct {
		model.Quiz
		QuestionCount int
	}, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		results = append(results, struct {
			model.Quiz
			QuestionCount int
		}{Quiz: *quiz, QuestionCount: len(quiz.Questions)})
	}
	return results, nil
}

func (r *fakeQuizRepo) Count() (int64, error) {
	return int64(len(r.quizzes)), nil
}

type fakeAttemptRepo struct {
	attempts   map[uint]*model.Attempt
	categories map[uint]string // quizID -> category
	nextID     uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{
		attempts:   make(map[uint]*model.Attempt),
		categories: make(map[uint]string),
		nextID:     1,
	}
}

func (r *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	attempt.ID = r.nextID
	r.nextID++
	clone := *attempt
	r.attempts[attempt.ID] = &clone
	return nil
}

func (r *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	attempt, ok := r.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *attempt
	return &clone, nil
}

func (r *fakeAttemptRepo) FindIncomplete(userID, quizID uint) (*model.Attempt, error) {
	var oldest *model.Attempt
	for _, attempt := range r.attempts {
		if attempt.UserID != userID || attempt.QuizID != quizID || attempt.Completed {
			continue
		}
		if oldest == nil || attempt.StartedAt.Before(oldest.StartedAt) {
			oldest = attempt
		}
	}
	if oldest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *oldest
	return &clone, nil
}

func (r *fakeAttemptRepo) FindAllByQuizAndUser(quizID, userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID && attempt.UserID == userID {
			attempts = append(attempts, *attempt)
		}
	}
	return attempts, nil
}

func (r *fakeAttemptRepo) FindAllByUserAndCategory(userID uint, category string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	for _, attempt := range r.attempts {
		if attempt.UserID == userID && r.categories[attempt.QuizID] == category {
			attempts = append(attempts, *attempt)
		}
	}
	return attempts, nil
}

func (r *fakeAttemptRepo) Finalize(id uint, score int, completedAt time.Time) error {
	attempt, ok := r.attempts[id]
	if !ok || attempt.Completed {
		return repository.ErrAttemptAlreadyCompleted
	}
	attempt.Score = score
	attempt.Completed = true
	attempt.CompletedAt = &completedAt
	return nil
}

type fakeProgressRepo struct {
	records map[string]*model.ProgressRecord
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*model.ProgressRecord)}
}

func progressKey(userID uint, category string) string {
	return fmt.Sprintf("%d/%s", userID, category)
}

func (r *fakeProgressRepo) Upsert(record *model.ProgressRecord) error {
	clone := *record
	r.records[progressKey(record.UserID, record.Category)] = &clone
	return nil
}

func (r *fakeProgressRepo) FindByUser(userID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	for _, record := range r.records {
		if record.UserID == userID {
			records = append(records, *record)
		}
	}
	return records, nil
}

type fakeLessonRepo struct {
	lessons map[string]*model.CompletedLesson
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[string]*model.CompletedLesson)}
}

func (r *fakeLessonRepo) CreateIfAbsent(lesson *model.CompletedLesson) error {
	key := fmt.Sprintf("%d/%s", lesson.UserID, lesson.LessonName)
	if existing, ok := r.lessons[key]; ok {
		*lesson = *existing
		return nil
	}
	lesson.ID = uint(len(r.lessons) + 1)
	clone := *lesson
	r.lessons[key] = &clone
	return nil
}

func (r *fakeLessonRepo) FindAllByUser(userID uint) ([]model.CompletedLesson, error) {
	var lessons []model.CompletedLesson
	for _, lesson := range r.lessons {
		if lesson.UserID == userID {
			lessons = append(lessons, *lesson)
		}
	}
	return lessons, nil
}

type fakeActivityRepo struct {
	activities []model.LearningActivity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(activity *model.LearningActivity) error {
	activity.ID = uint(len(r.activities) + 1)
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) FindAllByUser(userID uint) ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	for _, activity := range r.activities {
		if activity.UserID == userID {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

type fakeSavedWordRepo struct {
	words  map[uint]*model.SavedWord
	nextID uint
}

func newFakeSavedWordRepo() *fakeSavedWordRepo {
	return &fakeSavedWordRepo{words: make(map[uint]*model.SavedWord), nextID: 1}
}

func (r *fakeSavedWordRepo) Create(word *model.SavedWord) error {
	word.ID = r.nextID
	r.nextID++
	clone := *word
	r.words[word.ID] = &clone
	return nil
}

func (r *fakeSavedWordRepo) Update(word *model.SavedWord) error {
	clone := *word
	r.words[word.ID] = &clone
	return nil
}

func (r *fakeSavedWordRepo) FindByUserAndWord(userID uint, word string) (*model.SavedWord, error) {
	for _, saved := range r.words {
		if saved.UserID == userID && strings.EqualFold(saved.Word, word) {
			clone := *saved
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSavedWordRepo) FindAllByUser(userID uint) ([]model.SavedWord, error) {
	var words []model.SavedWord
	for _, saved := range r.words {
		if saved.UserID == userID {
			words = append(words, *saved)
		}
	}
	return words, nil
}

func (r *fakeSavedWordRepo) FindByPrefix(prefix string) ([]model.SavedWord, error) {
	var words []model.SavedWord
	lower := strings.ToLower(prefix)
	for _, saved := range r.words {
		if strings.HasPrefix(strings.ToLower(saved.Word), lower) {
			words = append(words, *saved)
		}
	}
	return words, nil
}
