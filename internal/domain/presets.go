package domain

import (
	"fmt"
	"sort"
)

// Preset profile names.
const (
	PresetIdealMatch   = "ideal_match"
	PresetHighRisk     = "high_risk"
	PresetModerateRisk = "moderate_risk"
)

// PresetProfiles returns the built-in sample households keyed by name. Each
// starts from DefaultProfile and overrides only what differs.
func PresetProfiles() map[string]HouseholdProfile {
	ideal := DefaultProfile()
	ideal.ExperienceLevel = ExperienceExpert
	ideal.HomeType = HomeHouse
	ideal.YardSize = YardLarge
	ideal.DailyExerciseMinutes = 90
	ideal.WorkSchedule = ScheduleFlexible

	high := DefaultProfile()
	high.HasKids = true
	high.KidAges = []KidAge{KidToddler}
	high.DailyExerciseMinutes = 15
	high.Allergies = AllergyModerate
	high.NoiseTolerance = NoiseLow
	high.TrainingCommitment = TrainingLimited

	moderate := DefaultProfile()
	moderate.ExperienceLevel = ExperienceSome
	moderate.HasKids = true
	moderate.KidAges = []KidAge{KidSchoolAge}
	moderate.HomeType = HomeTownhouse
	moderate.YardSize = YardSmall
	moderate.DailyExerciseMinutes = 45
	moderate.WorkSchedule = SchedulePartTime

	return map[string]HouseholdProfile{
		PresetIdealMatch:   ideal,
		PresetHighRisk:     high,
		PresetModerateRisk: moderate,
	}
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	presets := PresetProfiles()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetProfile looks up a preset by name.
func PresetProfile(name string) (HouseholdProfile, error) {
	p, ok := PresetProfiles()[name]
	if !ok {
		return HouseholdProfile{}, WrapError("preset_profile", fmt.Errorf("%w: %q", ErrUnknownPreset, name))
	}
	return p, nil
}
