package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	maxSynonymsPerDefinition = 3
	maxSynonymsTotal         = 10
)

// Client fetches word entries from a dictionaryapi.dev-compatible service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Response shape of the free dictionary API.
type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiEntry struct {
	Word      string        `json:"word"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

// Fetch retrieves a word from the external service. Any non-200 status or
// response that lacks a first definition is reported as an error; the
// caller decides how to degrade.
func (c *Client) Fetch(ctx context.Context, word string) (Entry, error) {
	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("building dictionary request for %q: %w", word, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("fetching definition for %q: %w", word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("dictionary service returned status %d for %q", resp.StatusCode, word)
	}

	var entries []apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return Entry{}, fmt.Errorf("decoding dictionary response for %q: %w", word, err)
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return Entry{}, fmt.Errorf("dictionary response for %q has no definitions", word)
	}

	first := entries[0]
	firstDef := first.Meanings[0].Definitions[0]

	entry := Entry{
		Word:         word,
		Definition:   firstDef.Definition,
		Example:      firstDef.Example,
		PartOfSpeech: first.Meanings[0].PartOfSpeech,
		Synonyms:     collectSynonyms(first.Meanings),
	}

	for _, p := range first.Phonetics {
		if entry.Pronunciation == "" && p.Text != "" {
			entry.Pronunciation = p.Text
		}
		if entry.AudioURL == "" && p.Audio != "" {
			entry.AudioURL = p.Audio
		}
	}

	return entry, nil
}

// collectSynonyms gathers synonyms across all meanings, taking at most
// three per definition, dropping duplicates, and capping the total at ten.
func collectSynonyms(meanings []apiMeaning) []string {
	var synonyms []string
	seen := make(map[string]bool)

	for _, m := range meanings {
		for _, d := range m.Definitions {
			taken := 0
			for _, s := range d.Synonyms {
				if taken == maxSynonymsPerDefinition {
					break
				}
				taken++
				if seen[s] {
					continue
				}
				seen[s] = true
				synonyms = append(synonyms, s)
				if len(synonyms) == maxSynonymsTotal {
					return synonyms
				}
			}
		}
	}
	return synonyms
}
