// Package service contains the business logic layer.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/furfindr/internal/classifier"
	"github.com/furfindr/internal/domain"
	"github.com/furfindr/internal/rules"
	"github.com/furfindr/internal/triggerlog"
	"github.com/furfindr/pkg/textnorm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Assessment is one evaluated profile/animal pair together with the
// presentation data built around the engine's result.
type Assessment struct {
	// ID identifies this assessment in logs and responses.
	ID string `json:"assessment_id"`

	// AnimalID is the listing id of the evaluated animal.
	AnimalID string `json:"animal_id"`

	// Result is the engine verdict, unmodified.
	Result domain.RiskResult `json:"result"`

	// DisplayScore is RiskScore clamped to the configured display cap.
	DisplayScore int `json:"display_score"`

	// CompatibilityScore is the display cap minus DisplayScore.
	CompatibilityScore int `json:"compatibility_score"`

	// DataQuality grades how much of the animal record the rules could use.
	DataQuality classifier.Completeness `json:"data_quality"`

	// Warnings lists input values that were accepted but cannot match.
	Warnings []string `json:"warnings"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Outcomes of comparing two assessments.
const (
	BetterFirst  = "first"
	BetterSecond = "second"
	BetterTie    = "tie"
)

// Comparison holds two assessments for the same household.
type Comparison struct {
	First  Assessment `json:"first"`
	Second Assessment `json:"second"`

	// Better is BetterFirst, BetterSecond or BetterTie. Lower risk wins.
	Better string `json:"better_match"`

	// ScoreDifference is the absolute gap between the two risk scores.
	ScoreDifference int `json:"score_difference"`
}

// AssessorConfig contains configuration for the Assessor.
type AssessorConfig struct {
	MaxBatchSize    int
	DisplayScoreCap int
}

// Assessor orchestrates normalisation, rule evaluation and presentation
// scoring.
type Assessor struct {
	engine     *rules.Engine
	normalizer *textnorm.Normalizer
	inspector  *ProfileInspector
	config     AssessorConfig
	newID      func() string
	now        func() time.Time
	logger     *zap.Logger
}

// NewAssessor creates a new Assessor with all dependencies.
func NewAssessor(engine *rules.Engine, config AssessorConfig, logger *zap.Logger) *Assessor {
	return &Assessor{
		engine:     engine,
		normalizer: textnorm.New(),
		inspector:  NewProfileInspector(),
		config:     config,
		newID:      uuid.NewString,
		now:        time.Now,
		logger:     logger.Named("assessor"),
	}
}

// Assess evaluates one animal for a household. It never fails.
func (s *Assessor) Assess(ctx context.Context, profile domain.HouseholdProfile, animal domain.AnimalRecord) Assessment {
	startTime := time.Now()

	animal = s.normalize(animal)
	result := s.engine.Evaluate(profile, animal)

	a := Assessment{
		ID:                 s.newID(),
		AnimalID:           animal.ID,
		Result:             result,
		DisplayScore:       result.DisplayScore(s.config.DisplayScoreCap),
		CompatibilityScore: result.CompatibilityScore(s.config.DisplayScoreCap),
		DataQuality:        classifier.Assess(animal),
		Warnings:           s.inspector.Inspect(profile, animal),
		EvaluatedAt:        s.now().UTC(),
	}

	s.logger.Info("assessment completed",
		zap.String("assessment_id", a.ID),
		zap.String("animal_id", a.AnimalID),
		zap.Int("risk_score", result.RiskScore),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Int("rules_triggered", result.TotalRulesTriggered),
		zap.String("data_confidence", string(a.DataQuality.Confidence)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return a
}

// Rank evaluates every animal and orders the assessments from lowest to
// highest risk. Animals with equal scores keep their input order.
func (s *Assessor) Rank(ctx context.Context, profile domain.HouseholdProfile, animals []domain.AnimalRecord) ([]Assessment, error) {
	if len(animals) == 0 {
		return nil, domain.WrapError("rank", domain.ErrEmptyBatch)
	}

	if s.config.MaxBatchSize > 0 && len(animals) > s.config.MaxBatchSize {
		return nil, domain.WrapError("rank",
			fmt.Errorf("%w: %d animals, limit is %d", domain.ErrBatchTooLarge, len(animals), s.config.MaxBatchSize))
	}

	out := make([]Assessment, 0, len(animals))
	for _, animal := range animals {
		if err := ctx.Err(); err != nil {
			return nil, domain.WrapError("rank", err)
		}
		out = append(out, s.Assess(ctx, profile, animal))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.RiskScore < out[j].Result.RiskScore
	})

	s.logger.Debug("ranking completed", zap.Int("animals", len(out)))
	return out, nil
}

// RankAvailable lists up to limit animals from repo and ranks them.
func (s *Assessor) RankAvailable(ctx context.Context, repo PetRepository, profile domain.HouseholdProfile, limit int) ([]Assessment, error) {
	if limit <= 0 || (s.config.MaxBatchSize > 0 && limit > s.config.MaxBatchSize) {
		limit = s.config.MaxBatchSize
	}

	animals, err := repo.List(ctx, limit)
	if err != nil {
		return nil, domain.WrapError("list_animals", err)
	}

	return s.Rank(ctx, profile, animals)
}

// Compare evaluates two animals side by side for the same household.
func (s *Assessor) Compare(ctx context.Context, profile domain.HouseholdProfile, first, second domain.AnimalRecord) Comparison {
	c := Comparison{
		First:  s.Assess(ctx, profile, first),
		Second: s.Assess(ctx, profile, second),
	}

	a, b := c.First.Result.RiskScore, c.Second.Result.RiskScore
	switch {
	case a < b:
		c.Better = BetterFirst
		c.ScoreDifference = b - a
	case b < a:
		c.Better = BetterSecond
		c.ScoreDifference = a - b
	default:
		c.Better = BetterTie
	}

	return c
}

// TriggerStats summarises the engine's trigger log. It fails only when the
// log's backing store cannot be read.
func (s *Assessor) TriggerStats(ctx context.Context) (domain.TriggerStats, error) {
	stats, err := triggerlog.ReadStats(ctx, s.engine.Recorder())
	if err != nil {
		return domain.TriggerStats{}, domain.WrapError("trigger_stats", err)
	}
	return stats, nil
}

// ResetTriggers clears the engine's trigger log.
func (s *Assessor) ResetTriggers() {
	s.engine.Recorder().Reset()
	s.logger.Info("trigger log reset")
}

// DisplayScoreCap returns the configured presentation cap.
func (s *Assessor) DisplayScoreCap() int {
	return s.config.DisplayScoreCap
}

// normalize trims breed and description. Content is never shortened so the
// classifier sees the whole text.
func (s *Assessor) normalize(animal domain.AnimalRecord) domain.AnimalRecord {
	if animal.Description != nil {
		desc, stats := s.normalizer.NormalizeWithStats(*animal.Description)
		s.logger.Debug("description normalized",
			zap.String("animal_id", animal.ID),
			zap.Int("original_size", stats.OriginalSize),
			zap.Int("normalized_size", stats.NormalizedSize),
		)
		animal.Description = &desc
	}
	animal.Breed = s.normalizer.Ptr(animal.Breed)
	return animal
}
