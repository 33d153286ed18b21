// Package dictionary resolves word definitions through a layered lookup:
// an in-process cache, a curated local table, and finally the free
// dictionary HTTP API. Failed lookups degrade to a synthetic placeholder
// entry which is cached as well, so an unknown word costs at most one
// network call per process lifetime.
package dictionary

// Entry is a resolved word. Optional fields default to the empty string
// or a nil slice; callers never probe for presence beyond that.
type Entry struct {
	Word          string   `json:"word"`
	Definition    string   `json:"definition"`
	Example       string   `json:"example,omitempty"`
	PartOfSpeech  string   `json:"part_of_speech,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"` // deduplicated, at most 10
	Pronunciation string   `json:"pronunciation,omitempty"`
	AudioURL      string   `json:"audio_url,omitempty"`
}
