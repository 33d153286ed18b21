package dto

import "time"

// TopicDTO is one browsable first-letter vocabulary group.
type TopicDTO struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// WordDTO is a resolved vocabulary word as shown while browsing.
type WordDTO struct {
	Word          string   `json:"word"`
	Definition    string   `json:"definition"`
	Example       string   `json:"example,omitempty"`
	PartOfSpeech  string   `json:"part_of_speech,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	AudioURL      string   `json:"audio_url,omitempty"`
	IsSaved       bool     `json:"is_saved"`
}

// SaveWordDTO is the request body for saving a favorite word.
type SaveWordDTO struct {
	UserID     uint   `json:"user_id" binding:"required"`
	Word       string `json:"word" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Example    string `json:"example"`
}

// SavedWordDTO is a word in the user's favorites list.
type SavedWordDTO struct {
	ID         uint      `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Example    string    `json:"example,omitempty"`
	Mastered   bool      `json:"mastered"`
	CreatedAt  time.Time `json:"created_at"`
}
