package store

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Location is one entry of the public location dropdown.
type Location struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

const (
	locationCacheKey = "/location/dropdown/list"
	// the dropdown backs a registration form; staleness of a few minutes is fine
	locationCacheTTL = 10 * time.Minute
)

// LocationStore serves the location dropdown with an in-process TTL cache in
// front, since every registration keystroke re-filters the same list.
type LocationStore struct {
	client *Client
	cache  *ristretto.Cache[string, []byte]
}

func newLocationStore(c *Client) (*LocationStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &LocationStore{client: c, cache: cache}, nil
}

func (s *LocationStore) List(ctx context.Context) ([]Location, error) {
	if raw, ok := s.cache.Get(locationCacheKey); ok {
		var cached []Location
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	raw, err := s.client.request(ctx, http.MethodGet, locationCacheKey, nil, nil, false)
	if err != nil {
		return nil, err
	}
	locations, err := decodeList[Location](raw)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(locations); err == nil {
		s.cache.SetWithTTL(locationCacheKey, encoded, int64(len(encoded)), locationCacheTTL)
	}
	return locations, nil
}

// Search filters the dropdown by name, case-insensitively, preserving the
// server's order.
func (s *LocationStore) Search(ctx context.Context, term string) ([]Location, error) {
	locations, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return locations, nil
	}
	var out []Location
	for _, l := range locations {
		if strings.Contains(strings.ToLower(l.Name), term) {
			out = append(out, l)
		}
	}
	return out, nil
}
