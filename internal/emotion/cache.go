package emotion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyPrefix = "emotion:scores"

	// upper bound for a lookup shared by coalesced callers
	sharedLookupTimeout = 60 * time.Second
)

// ScoreStore is a byte-oriented key value store with expiry.
type ScoreStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedDetector serves repeated texts from a ScoreStore. Only classified
// Scores are stored, and a failing store never fails a detection.
type CachedDetector struct {
	next  Detector
	store ScoreStore
	ttl   time.Duration
	group singleflight.Group
}

func NewCachedDetector(next Detector, store ScoreStore, ttl time.Duration) *CachedDetector {
	if ttl < time.Second {
		ttl = time.Second
	}
	return &CachedDetector{next: next, store: store, ttl: ttl}
}

func (d *CachedDetector) Name() string {
	return d.next.Name()
}

// Detect coalesces concurrent calls for the same text into one lookup. The
// lookup is detached from any single caller, so a caller that gives up only
// abandons its own wait.
func (d *CachedDetector) Detect(ctx context.Context, text string) (Scores, error) {
	key := cacheKey(d.next.Name(), text)
	ch := d.group.DoChan(key, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()
		return d.lookup(sharedCtx, key, text)
	})

	select {
	case <-ctx.Done():
		return Scores{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Scores{}, res.Err
		}
		return res.Val.(Scores), nil
	}
}

func (d *CachedDetector) lookup(ctx context.Context, key, text string) (Scores, error) {
	raw, found, err := d.store.Get(ctx, key)
	if err != nil {
		slog.Warn("[CachedDetector] Cache read failed, bypassing",
			slog.String("error", err.Error()))
	}
	if found {
		var cached Scores
		if err := json.Unmarshal(raw, &cached); err == nil && cached.Classified() {
			slog.Debug("[CachedDetector] Cache hit", slog.String("key", key))
			return cached, nil
		}
		slog.Warn("[CachedDetector] Ignoring unusable cache entry", slog.String("key", key))
	}

	scores, err := d.next.Detect(ctx, text)
	if err != nil || !scores.Classified() {
		return scores, err
	}

	raw, err = json.Marshal(scores)
	if err != nil {
		slog.Warn("[CachedDetector] Failed to marshal scores",
			slog.String("error", err.Error()))
		return scores, nil
	}
	if err := d.store.Set(ctx, key, raw, d.ttl); err != nil {
		slog.Warn("[CachedDetector] Cache write failed",
			slog.String("error", err.Error()))
	}
	return scores, nil
}

// cacheKey hashes the text so arbitrary input never ends up in a key.
func cacheKey(backend, text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, backend, hex.EncodeToString(hash[:]))
}
