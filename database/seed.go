package database

import (
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedSampleQuizzes inserts the starter quizzes on first run. It is a
// no-op when any quiz already exists.
func SeedSampleQuizzes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Quiz{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("Seeding sample quizzes...")
	quizzes := sampleQuizzes()
	for i := range quizzes {
		if err := db.Create(&quizzes[i]).Error; err != nil {
			log.Error().Err(err).Str("title", quizzes[i].Title).Msg("Failed to seed quiz")
			return err
		}
	}
	log.Info().Int("count", len(quizzes)).Msg("Sample quizzes seeded")
	return nil
}

func sampleQuizzes() []model.Quiz {
	titanicPassage := "On April 14, 1912, the Titanic, operated by the White Star Line, embarked on its maiden voyage. " +
		"The company had promoted the ship as 'unsinkable,' creating a sense of overconfidence among its leadership. " +
		"Captain Smith, under pressure to maintain the ship's speed of 22 knots to meet a tight schedule, ignored multiple ice warnings. " +
		"Additionally, the Titanic carried lifeboats for only 1,178 of its 2,222 passengers."

	return []model.Quiz{
		{
			Title:       "Basic English Grammar",
			Description: "Test your knowledge of basic English grammar rules including tenses, articles, and prepositions.",
			Difficulty:  model.DifficultyBeginner,
			Category:    model.CategoryGrammar,
			TimeLimit:   600,
			PassMark:    70,
			Questions: []model.Question{
				{
					Text:        "Which sentence uses the present continuous tense correctly?",
					OrderInQuiz: 1,
					Answers: []model.Answer{
						{Text: "I am going to the store tomorrow."},
						{Text: "She watching TV right now."},
						{Text: "They are studying for their exam.", IsCorrect: true},
						{Text: "He work at the office every day."},
					},
				},
				{
					Text:        "Choose the sentence with the correct article usage:",
					OrderInQuiz: 2,
					Answers: []model.Answer{
						{Text: "I saw a elephant at the zoo."},
						{Text: "She is the best student in an class."},
						{Text: "He bought a new car last month.", IsCorrect: true},
						{Text: "They went to the university in hour ago."},
					},
				},
				{
					Text:        "Which sentence contains a preposition error?",
					OrderInQuiz: 3,
					Answers: []model.Answer{
						{Text: "She arrived at the airport on time."},
						{Text: "We re going to the movies in Saturday.", IsCorrect: true},
						{Text: "The book is on the table."},
						{Text: "They walked through the park."},
					},
				},
				{
					Text:        "Select the correct past tense form of the verb \"go\":",
					OrderInQuiz: 4,
					Answers: []model.Answer{
						{Text: "goed"},
						{Text: "went", IsCorrect: true},
						{Text: "gone"},
						{Text: "going"},
					},
				},
				{
					Text:        "Which sentence uses the correct plural form?",
					OrderInQuiz: 5,
					Answers: []model.Answer{
						{Text: "I have two childs."},
						{Text: "There are five sheep in the field.", IsCorrect: true},
						{Text: "We saw many mouses in the barn."},
						{Text: "They have three foots."},
					},
				},
			},
		},
		{
			Title:       "English Vocabulary Challenge",
			Description: "Expand your English vocabulary with this quiz on synonyms, antonyms, and definitions.",
			Difficulty:  model.DifficultyIntermediate,
			Category:    model.CategoryVocabulary,
			TimeLimit:   720,
			PassMark:    60,
			Questions: []model.Question{
				{
					Text:        "What is the best synonym for \"jubilant\"?",
					OrderInQuiz: 1,
					Answers: []model.Answer{
						{Text: "Angry"},
						{Text: "Joyful", IsCorrect: true},
						{Text: "Tired"},
						{Text: "Confused"},
					},
				},
				{
					Text:        "Which word is an antonym of \"scarce\"?",
					OrderInQuiz: 2,
					Answers: []model.Answer{
						{Text: "Rare"},
						{Text: "Limited"},
						{Text: "Abundant", IsCorrect: true},
						{Text: "Hidden"},
					},
				},
				{
					Text:        "What does \"meticulous\" mean?",
					OrderInQuiz: 3,
					Answers: []model.Answer{
						{Text: "Careless and rushed"},
						{Text: "Showing great attention to detail", IsCorrect: true},
						{Text: "Loud and aggressive"},
						{Text: "Extremely large"},
					},
				},
				{
					Text:        "Choose the word closest in meaning to \"reluctant\":",
					OrderInQuiz: 4,
					Answers: []model.Answer{
						{Text: "Eager"},
						{Text: "Unwilling", IsCorrect: true},
						{Text: "Prepared"},
						{Text: "Generous"},
					},
				},
				{
					Text:        "A person who is \"frugal\" is:",
					OrderInQuiz: 5,
					Answers: []model.Answer{
						{Text: "Wasteful with money"},
						{Text: "Careful about spending money", IsCorrect: true},
						{Text: "Afraid of strangers"},
						{Text: "Always late"},
					},
				},
			},
		},
		{
			Title:       "Reading Comprehension: The Titanic",
			Description: "Read a short passage and answer questions about its details.",
			Difficulty:  model.DifficultyAdvanced,
			Category:    model.CategoryReading,
			TimeLimit:   900,
			PassMark:    60,
			Questions: []model.Question{
				{
					Text:        "Why did Captain Smith maintain the Titanic's speed despite ice warnings?",
					Context:     &titanicPassage,
					OrderInQuiz: 1,
					Answers: []model.Answer{
						{Text: "To test the ship's capabilities"},
						{Text: "To meet a tight schedule", IsCorrect: true},
						{Text: "Because he was unaware of the warnings"},
						{Text: "To avoid delays in Southampton"},
					},
				},
				{
					Text:        "How many passengers could the Titanic's lifeboats hold?",
					Context:     &titanicPassage,
					OrderInQuiz: 2,
					Answers: []model.Answer{
						{Text: "2,222"},
						{Text: "1,178", IsCorrect: true},
						{Text: "1,060"},
						{Text: "All of them"},
					},
				},
			},
		},
	}
}
