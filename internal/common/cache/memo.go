// internal/common/cache/memo.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-scanner/internal/common/errors"
	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/common/metrics"
)

// Memo caches semantic scores keyed by the exact (resume, job description)
// pair. All methods are nil-safe: a nil Memo always misses and drops writes.
type Memo struct {
	client *RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewMemo wraps a Redis client as a score memoizer.
func NewMemo(client *RedisClient, ttl time.Duration, log logger.Logger) *Memo {
	return &Memo{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "cache"}),
	}
}

// Key hashes the input pair. Exact-match only: any change to either text is
// a different key.
func Key(resumeText, jobDescription string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobDescription))
	return "semantic:" + hex.EncodeToString(h.Sum(nil))
}

// GetScore returns the cached score for the pair, if any. Redis errors
// count as misses; the caller recomputes.
func (m *Memo) GetScore(ctx context.Context, resumeText, jobDescription string) (float64, bool) {
	if m == nil || m.client == nil {
		return 0, false
	}

	raw, err := m.client.Get(ctx, Key(resumeText, jobDescription))
	if err == redis.Nil {
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return 0, false
	}
	if err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		stdErr := errors.NewCacheUnavailableError(err)
		m.logger.WithError(stdErr).Warn("cache lookup failed", map[string]interface{}{
			"details": stdErr.Details,
		})
		return 0, false
	}

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		m.logger.Warn("discarding malformed cached score", map[string]interface{}{
			"value": raw,
		})
		return 0, false
	}

	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return score, true
}

// SetScore stores the score for the pair, bounded by the configured TTL.
// Failures are logged and swallowed; caching is best effort.
func (m *Memo) SetScore(ctx context.Context, resumeText, jobDescription string, score float64) {
	if m == nil || m.client == nil {
		return
	}

	value := strconv.FormatFloat(score, 'f', -1, 64)
	if err := m.client.Set(ctx, Key(resumeText, jobDescription), value, m.ttl); err != nil {
		metrics.CacheRequests.WithLabelValues("error").Inc()
		m.logger.WithError(err).Warn("failed to cache score", nil)
	}
}
