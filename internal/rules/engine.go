// Package rules provides the household/animal compatibility rule set.
package rules

import (
	"github.com/furfindr/internal/classifier"
	"github.com/furfindr/internal/domain"
	"github.com/furfindr/internal/triggerlog"
	"go.uber.org/zap"
)

// Engine evaluates a fixed rule set against profile/animal pairs. It holds no
// per-call state and is safe for concurrent use when its Recorder is.
type Engine struct {
	rules    []*Rule
	recorder triggerlog.Recorder
	logger   *zap.Logger
}

// NewEngine creates a new rule engine. A nil recorder falls back to the
// process-wide trigger log.
func NewEngine(rules []*Rule, recorder triggerlog.Recorder, logger *zap.Logger) *Engine {
	if recorder == nil {
		recorder = triggerlog.Default()
	}
	return &Engine{
		rules:    rules,
		recorder: recorder,
		logger:   logger.Named("rule_engine"),
	}
}

// Rules returns the engine's rules in evaluation order.
func (e *Engine) Rules() []*Rule {
	return e.rules
}

// Recorder returns the trigger sink the engine writes to.
func (e *Engine) Recorder() triggerlog.Recorder {
	return e.recorder
}

// Match applies every rule and returns the triggered ones in evaluation
// order. Each trigger is recorded once, and one evaluation's triggers are
// handed to the recorder together.
func (e *Engine) Match(profile domain.HouseholdProfile, animal domain.AnimalRecord) []domain.TriggeredRule {
	in := Input{
		Profile: profile,
		Animal:  animal,
		Traits:  classifier.Classify(animal),
	}

	triggered := []domain.TriggeredRule{}
	var ids []string
	for _, rule := range e.rules {
		if !rule.Match(in) {
			continue
		}

		e.logger.Debug("rule triggered",
			zap.String("rule_id", rule.ID),
			zap.Int("weight", rule.Weight),
		)
		ids = append(ids, rule.ID)
		triggered = append(triggered, rule.Triggered())
	}
	triggerlog.RecordAll(e.recorder, ids)

	return triggered
}

// Evaluate scores one profile/animal pair. It never fails: missing or
// out-of-domain fields only make rules not match.
func (e *Engine) Evaluate(profile domain.HouseholdProfile, animal domain.AnimalRecord) domain.RiskResult {
	return Aggregate(animal, e.Match(profile, animal))
}
