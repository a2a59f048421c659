// internal/analyzer/service.go

// Package analyzer is the public facade: one call runs extraction, semantic
// scoring and rule-based scoring, and folds everything into a Report. The
// service always answers; every internal failure degrades to a sentinel.
package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-scanner/internal/common/cache"
	"resume-scanner/internal/common/config"
	"resume-scanner/internal/common/errors"
	"resume-scanner/internal/common/logger"
	"resume-scanner/internal/common/metrics"
	"resume-scanner/internal/common/observability"
	"resume-scanner/internal/extract"
	"resume-scanner/internal/patterns"
	"resume-scanner/internal/score"
	"resume-scanner/internal/semantic"
)

// Service ties the pipeline together. All collaborators are injected; the
// memo, observability and tagger are optional.
type Service struct {
	cfg       *config.Config
	extractor *extract.Extractor
	composer  *score.Composer
	provider  semantic.Provider
	memo      *cache.Memo
	obs       *observability.Observability
	logger    logger.Logger
}

// NewService builds the analysis pipeline. A nil provider scores every pair
// at the neutral fallback; a nil memo disables caching.
func NewService(cfg *config.Config, provider semantic.Provider, tagger extract.Tagger, memo *cache.Memo, obs *observability.Observability, log logger.Logger) *Service {
	lib := patterns.Default()
	return &Service{
		cfg:       cfg,
		extractor: extract.New(lib, tagger, log),
		composer:  score.NewComposer(lib, cfg.Scoring.Weights, log),
		provider:  provider,
		memo:      memo,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// Analyze runs the full pipeline for one resume/job-description pair. The
// returned error is always nil: partial failures degrade to sentinels and a
// catastrophic scoring failure yields the zeroed Error breakdown. The error
// return is kept for symmetry with collaborator interfaces.
func (s *Service) Analyze(ctx context.Context, resumeText, jobDescription, filename string) (*Report, error) {
	started := time.Now()

	extractStart := time.Now()
	profile := s.extractor.Extract(resumeText, filename)
	metrics.AnalysisDuration.WithLabelValues("extract").Observe(time.Since(extractStart).Seconds())

	semanticScore := s.semanticScore(ctx, resumeText, jobDescription)

	scoreStart := time.Now()
	breakdown := s.composer.Compose(jobDescription, profile.Skills, profile.ExperienceYears, profile.Education, semanticScore)
	metrics.AnalysisDuration.WithLabelValues("score").Observe(time.Since(scoreStart).Seconds())

	fit, summary := fitSummary(breakdown.FinalScore, s.cfg.Scoring.Thresholds)

	metrics.AnalysesTotal.WithLabelValues(breakdown.FitCategory).Inc()
	metrics.AnalysisDuration.WithLabelValues("total").Observe(time.Since(started).Seconds())
	if s.obs != nil {
		s.obs.RecordAnalysis(ctx, breakdown.FitCategory)
		s.obs.RecordAnalysisDuration(ctx, time.Since(started), breakdown.FitCategory)
	}

	s.logger.Info("analysis complete", map[string]interface{}{
		"final_score":  breakdown.FinalScore,
		"fit_category": breakdown.FitCategory,
		"fit":          fit,
		"duration_ms":  time.Since(started).Milliseconds(),
	})

	return &Report{
		RequestID:         uuid.NewString(),
		MatchScore:        breakdown.FinalScore,
		Fit:               fit,
		Summary:           summary,
		Narrative:         narrative(breakdown),
		CandidateInfo:     profile,
		ExtractionSummary: extract.Summarize(profile),
		ScoreBreakdown:    breakdown,
	}, nil
}

// semanticScore resolves the similarity percentage: cache, then provider,
// then the neutral fallback. Provider failures are logged and absorbed.
func (s *Service) semanticScore(ctx context.Context, resumeText, jobDescription string) float64 {
	if cached, ok := s.memo.GetScore(ctx, resumeText, jobDescription); ok {
		return cached
	}

	if s.provider == nil {
		return semantic.FallbackScore
	}

	if timeout := s.cfg.Semantic.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Millisecond)
		defer cancel()
	}

	start := time.Now()
	scoreValue, err := s.provider.Score(ctx, resumeText, jobDescription)
	metrics.AnalysisDuration.WithLabelValues("semantic").Observe(time.Since(start).Seconds())
	if err != nil {
		stdErr := errors.NewSemanticScoreError(err)
		s.logger.WithError(stdErr).Error("semantic score failed, using fallback", map[string]interface{}{
			"details":   stdErr.Details,
			"retryable": errors.IsRetryable(stdErr),
		})
		return semantic.FallbackScore
	}

	s.memo.SetScore(ctx, resumeText, jobDescription, scoreValue)
	return scoreValue
}
