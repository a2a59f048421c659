// internal/semantic/provider.go

// Package semantic defines the contract for the external embedding
// collaborator. The model itself lives outside this repo; the analyzer only
// needs a percentage back.
package semantic

import (
	"context"
	"sync"

	"resume-scanner/internal/common/errors"
)

// Provider scores the semantic similarity of a resume against a job
// description, already scaled to 0-100.
type Provider interface {
	Score(ctx context.Context, resumeText, jobDescription string) (float64, error)
}

// FallbackScore is what callers substitute when the provider is missing or
// fails: a neutral midpoint rather than a punitive zero.
const FallbackScore = 50.0

// Factory constructs a Provider. Model loading is expensive, so Lazy defers
// the call until the first Score.
type Factory func() (Provider, error)

// Lazy wraps a Factory behind a thread-safe once-only initialization. The
// construction error is sticky: every subsequent Score returns it without
// retrying the factory.
type Lazy struct {
	factory Factory

	once     sync.Once
	provider Provider
	err      error
}

// NewLazy returns a Provider that builds its delegate on first use.
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

func (l *Lazy) Score(ctx context.Context, resumeText, jobDescription string) (float64, error) {
	l.once.Do(func() {
		provider, err := l.factory()
		if err != nil {
			l.err = errors.NewModelLoadError(err)
			return
		}
		l.provider = provider
	})
	if l.err != nil {
		return 0, l.err
	}
	return l.provider.Score(ctx, resumeText, jobDescription)
}

// Fixed always returns the same score. Test double and offline default.
type Fixed float64

func (f Fixed) Score(context.Context, string, string) (float64, error) {
	return float64(f), nil
}
