package conditions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/ariebrainware/health-tracker/model"
)

const datasetCacheKey = "conditions:dataset"

var (
	// ErrEmptyQuery is returned when a lookup query is empty or whitespace.
	ErrEmptyQuery = errors.New("empty lookup query")
	// ErrNotFound is returned when no dataset entry matches the query.
	ErrNotFound = errors.New("condition not found")
)

// Client loads the static health-condition reference dataset from an HTTP
// URL or a local file and answers name lookups against it. Parsed datasets
// are cached with a TTL so repeated lookups do not refetch the source.
type Client struct {
	source     string
	httpClient *http.Client
	cache      *cache.Cache

	// refreshSeq tags each refresh; storeMu/storedSeq ensure a slow refresh
	// never overwrites the result of a newer one.
	refreshSeq uint64
	storeMu    sync.Mutex
	storedSeq  uint64

	cacheHits   int64
	cacheMisses int64
}

// NewClient returns a client reading the dataset from source. A source
// starting with http:// or https:// is fetched over the network, anything
// else is treated as a file path. ttl bounds how long a parsed dataset is
// reused before refetching; non-positive values fall back to 5 minutes.
func NewClient(source string, ttl time.Duration) *Client {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Client{
		source:     source,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache.New(ttl, ttl),
	}
}

// Dataset returns the parsed condition entries, refreshing from the source
// when the cached copy has expired. Concurrent refreshes may race; the one
// tagged with the highest sequence wins the cache slot and later finishers
// are discarded.
func (c *Client) Dataset(ctx context.Context) ([]model.ConditionReference, error) {
	if v, ok := c.cache.Get(datasetCacheKey); ok {
		if entries, ok := v.([]model.ConditionReference); ok {
			atomic.AddInt64(&c.cacheHits, 1)
			return entries, nil
		}
	}
	atomic.AddInt64(&c.cacheMisses, 1)

	seq := atomic.AddUint64(&c.refreshSeq, 1)
	requestID := uuid.NewString()

	entries, err := c.load(ctx)
	if err != nil {
		log.Printf("conditions: refresh %s failed: %v", requestID, err)
		return nil, err
	}

	c.storeMu.Lock()
	if seq > c.storedSeq {
		c.storedSeq = seq
		c.cache.Set(datasetCacheKey, entries, cache.DefaultExpiration)
	} else {
		log.Printf("conditions: refresh %s superseded, discarding", requestID)
	}
	c.storeMu.Unlock()

	return entries, nil
}

// Lookup finds the dataset entry whose name matches the query, comparing
// case-insensitively after trimming. Matching is exact, not fuzzy: a query
// of "diabetic" does not match "Diabetes". First match wins.
func (c *Client) Lookup(ctx context.Context, query string) (model.ConditionReference, error) {
	name := strings.TrimSpace(query)
	if name == "" {
		return model.ConditionReference{}, ErrEmptyQuery
	}

	entries, err := c.Dataset(ctx)
	if err != nil {
		return model.ConditionReference{}, err
	}

	for _, entry := range entries {
		if strings.EqualFold(strings.TrimSpace(entry.Name), name) {
			return entry, nil
		}
	}
	return model.ConditionReference{}, ErrNotFound
}

// Names returns the entry names of the dataset in source order.
func (c *Client) Names(ctx context.Context) ([]string, error) {
	entries, err := c.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names, nil
}

// Invalidate drops the cached dataset so the next call refetches.
func (c *Client) Invalidate() {
	c.cache.Delete(datasetCacheKey)
}

// CacheMetrics returns the dataset cache hit and miss counters.
func (c *Client) CacheMetrics() (hits, misses int64) {
	return atomic.LoadInt64(&c.cacheHits), atomic.LoadInt64(&c.cacheMisses)
}

func (c *Client) load(ctx context.Context) ([]model.ConditionReference, error) {
	var raw []byte
	var err error
	if strings.HasPrefix(c.source, "http://") || strings.HasPrefix(c.source, "https://") {
		raw, err = c.fetch(ctx)
	} else {
		raw, err = os.ReadFile(c.source)
	}
	if err != nil {
		return nil, err
	}

	var entries []model.ConditionReference
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse condition dataset: %w", err)
	}
	return entries, nil
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch condition dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch condition dataset: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
