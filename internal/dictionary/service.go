package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Service resolves words in order: cache, curated table, external service.
// Lookup never fails; when the external service is unreachable or the word
// is unknown, a placeholder entry is returned and cached so the word is not
// fetched again.
type Service struct {
	cache  *Cache
	client *Client
}

func NewService(cache *Cache, client *Client) *Service {
	return &Service{cache: cache, client: client}
}

func (s *Service) Lookup(ctx context.Context, word string) Entry {
	key := strings.ToLower(strings.TrimSpace(word))

	if entry, ok := s.cache.Get(key); ok {
		return entry
	}

	if entry, ok := curatedEntries[key]; ok {
		s.cache.Put(key, entry)
		return entry
	}

	entry, err := s.client.Fetch(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("word", key).Msg("Dictionary lookup failed, caching placeholder entry")
		entry = placeholderEntry(key)
	}
	s.cache.Put(key, entry)
	return entry
}

func placeholderEntry(word string) Entry {
	return Entry{
		Word:       word,
		Definition: fmt.Sprintf("Definition for %s", word),
		Example:    fmt.Sprintf("Example sentence using the word %s.", word),
	}
}
