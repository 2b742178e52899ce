package rules

import (
	"fmt"

	"github.com/furfindr/internal/domain"
)

// Risk level thresholds. A score below MediumThreshold is Low; a score at or
// above HighThreshold is High.
const (
	MediumThreshold = 20
	HighThreshold   = 50
)

var summaryTemplates = map[domain.RiskLevel]string{
	domain.RiskLow:    "%s appears to be a good match for your household!",
	domain.RiskMedium: "%s could work with preparation and commitment to the guidance below.",
	domain.RiskHigh:   "%s presents significant challenges for your situation. Carefully review concerns before proceeding.",
}

// LevelForScore buckets a risk score. There is no upper cap.
func LevelForScore(score int) domain.RiskLevel {
	switch {
	case score < MediumThreshold:
		return domain.RiskLow
	case score < HighThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

// Summary returns the one-sentence verdict for a level.
func Summary(level domain.RiskLevel, name string) string {
	tmpl, ok := summaryTemplates[level]
	if !ok {
		tmpl = summaryTemplates[domain.RiskLow]
	}
	return fmt.Sprintf(tmpl, name)
}

// Aggregate sums triggered weights and builds the final result.
func Aggregate(animal domain.AnimalRecord, triggered []domain.TriggeredRule) domain.RiskResult {
	if triggered == nil {
		triggered = []domain.TriggeredRule{}
	}

	score := 0
	for _, t := range triggered {
		score += t.Weight
	}
	level := LevelForScore(score)

	breed := animal.BreedText()
	if breed == "" {
		breed = "Unknown"
	}

	return domain.RiskResult{
		PetName:             animal.DisplayName(),
		PetBreed:            breed,
		RiskScore:           score,
		RiskLevel:           level,
		Summary:             Summary(level, animal.DisplayName()),
		TriggeredRules:      triggered,
		TotalRulesTriggered: len(triggered),
	}
}
