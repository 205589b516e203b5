package colourlovers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/athola/simple-resume/internal/palette"
)

// countingFetcher records fetches and serves a canned body.
type countingFetcher struct {
	calls int
	body  []byte
	err   error
}

func (f *countingFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

// memStore is an in-memory cache.Store.
type memStore struct {
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Read(key string) ([]byte, bool, error) {
	data, ok := m.entries[key]
	return data, ok, nil
}

func (m *memStore) Write(key string, data []byte) error {
	m.entries[key] = data
	return nil
}

const sampleBody = `[
	{"title": "Giant Goldfish", "userName": "manekineko", "colors": ["69D2E7", "A7DBD8", "E0E4CC", "F38630", "FA6900"], "url": "https://www.colourlovers.com/palette/92095"},
	{"title": "Thought Provoking", "userName": "ruby", "colors": ["ECD078", "D95B43", "C02942", "542437", "53777A"]}
]`

func TestFetchParsesPalettes(t *testing.T) {
	fetcher := &countingFetcher{body: []byte(sampleBody)}
	client := New(Options{Fetcher: fetcher, Store: newMemStore()})

	palettes, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "goldfish"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(palettes) != 2 {
		t.Fatalf("Fetch() returned %d palettes, want 2", len(palettes))
	}

	first := palettes[0]
	if first.Name() != "Giant Goldfish" {
		t.Errorf("palette name = %s, want Giant Goldfish", first.Name())
	}
	swatches := first.Swatches()
	if swatches[0] != "#69D2E7" {
		t.Errorf("first swatch = %s, want #69D2E7 (normalized with leading #)", swatches[0])
	}
	if first.Source() != palette.SourceRemote {
		t.Errorf("palette source = %s, want remote", first.Source())
	}
	if first.Metadata()["attribution"] != "manekineko" {
		t.Errorf("attribution = %v, want manekineko", first.Metadata()["attribution"])
	}
}

func TestFetchCachesWithinTTL(t *testing.T) {
	fetcher := &countingFetcher{body: []byte(sampleBody)}
	client := New(Options{Fetcher: fetcher, Store: newMemStore()})
	query := palette.RemoteQuery{Keywords: "sea", NumResults: 3}

	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if fetcher.calls != 1 {
		t.Errorf("fetch count = %d, want 1 (second call must be served from cache)", fetcher.calls)
	}
}

func TestFetchRefetchesAfterTTLExpiry(t *testing.T) {
	fetcher := &countingFetcher{body: []byte(sampleBody)}
	current := time.Unix(1_700_000_000, 0)
	client := New(Options{
		Fetcher: fetcher,
		Store:   newMemStore(),
		Now:     func() time.Time { return current },
	})
	query := palette.RemoteQuery{Keywords: "sea"}

	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	current = current.Add(TTL - time.Minute)
	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch count before expiry = %d, want 1", fetcher.calls)
	}

	current = current.Add(2 * time.Minute)
	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("fetch count after expiry = %d, want 2", fetcher.calls)
	}
}

func TestFetchDistinctQueriesDistinctEntries(t *testing.T) {
	fetcher := &countingFetcher{body: []byte(sampleBody)}
	client := New(Options{Fetcher: fetcher, Store: newMemStore()})

	if _, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "sea"}); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if _, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "forest"}); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if fetcher.calls != 2 {
		t.Errorf("fetch count = %d, want 2 (different keywords must not share a cache key)", fetcher.calls)
	}
}

func TestFetchCorruptCacheEntryIsMiss(t *testing.T) {
	fetcher := &countingFetcher{body: []byte(sampleBody)}
	store := newMemStore()
	client := New(Options{Fetcher: fetcher, Store: store})
	query := palette.RemoteQuery{Keywords: "sea"}

	// Poison every key the query could map to.
	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	for key := range store.entries {
		store.entries[key] = []byte("{not json")
	}

	if _, err := client.Fetch(context.Background(), query); err != nil {
		t.Fatalf("Fetch() with corrupt cache error = %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("fetch count = %d, want 2 (corrupt entry must be treated as a miss)", fetcher.calls)
	}
}

func TestFetchBlockedHostNeverHitsNetwork(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "loopback", baseURL: "http://127.0.0.1/api/palettes"},
		{name: "localhost", baseURL: "http://localhost/api/palettes"},
		{name: "rfc1918", baseURL: "http://192.168.1.5/api/palettes"},
		{name: "bad scheme", baseURL: "ftp://palettes.example.com/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &countingFetcher{body: []byte(sampleBody)}
			client := New(Options{BaseURL: tt.baseURL, Fetcher: fetcher})

			_, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "x"})
			var remoteErr *palette.RemoteError
			if !errors.As(err, &remoteErr) {
				t.Fatalf("Fetch() error = %v, want *palette.RemoteError", err)
			}
			if fetcher.calls != 0 {
				t.Errorf("fetch count = %d, want 0 (blocked before any network attempt)", fetcher.calls)
			}
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	cause := errors.New("connection reset")
	fetcher := &countingFetcher{err: cause}
	client := New(Options{Fetcher: fetcher})

	_, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "x"})
	var remoteErr *palette.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("Fetch() error = %v, want *palette.RemoteError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Fetch() error %v does not wrap the transport cause", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch count = %d, want 1 (no implicit retry)", fetcher.calls)
	}
}

func TestFetchMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>error</html>"},
		{name: "wrong shape", body: `{"palettes": true}`},
		{name: "invalid colour", body: `[{"title": "bad", "colors": ["ZZZZZZ"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &countingFetcher{body: []byte(tt.body)}
			client := New(Options{Fetcher: fetcher})

			_, err := client.Fetch(context.Background(), palette.RemoteQuery{Keywords: "x"})
			var remoteErr *palette.RemoteError
			if !errors.As(err, &remoteErr) {
				t.Errorf("Fetch() error = %v, want *palette.RemoteError", err)
			}
		})
	}
}

func TestNormalizeQueryClampsResults(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero", in: 0, want: 1},
		{name: "negative", in: -4, want: 1},
		{name: "in range", in: 10, want: 10},
		{name: "above ceiling", in: 500, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeQuery(palette.RemoteQuery{NumResults: tt.in})
			if got.NumResults != tt.want {
				t.Errorf("normalizeQuery(NumResults=%d) = %d, want %d", tt.in, got.NumResults, tt.want)
			}
		})
	}
}

func TestCacheKeyCanonical(t *testing.T) {
	a := cacheKey(normalizeQuery(palette.RemoteQuery{Keywords: "sea", OrderBy: "Score"}))
	b := cacheKey(normalizeQuery(palette.RemoteQuery{Keywords: " sea ", NumResults: 1}))
	if a != b {
		t.Errorf("equivalent queries hash differently: %s vs %s", a, b)
	}

	c := cacheKey(normalizeQuery(palette.RemoteQuery{Keywords: "forest"}))
	if a == c {
		t.Error("distinct queries share a cache key")
	}
}
