package service

import (
	"fmt"

	"github.com/furfindr/internal/domain"
)

// ProfileInspector reports profile and animal values that fall outside their
// enumerated domains. Such values are accepted and simply never match a rule,
// so the findings are warnings rather than errors.
type ProfileInspector struct{}

// NewProfileInspector creates a new ProfileInspector.
func NewProfileInspector() *ProfileInspector {
	return &ProfileInspector{}
}

// Inspect returns one warning per out-of-domain field, in field order.
func (v *ProfileInspector) Inspect(profile domain.HouseholdProfile, animal domain.AnimalRecord) []string {
	warnings := []string{}

	if !profile.ExperienceLevel.IsValid() {
		warnings = append(warnings, unknownValue("experience_level", profile.ExperienceLevel))
	}

	for i, age := range profile.KidAges {
		if !age.IsValid() {
			warnings = append(warnings, unknownValue(fmt.Sprintf("kid_ages[%d]", i), age))
		}
	}

	if len(profile.KidAges) > 0 && !profile.HasKids {
		warnings = append(warnings, "kid_ages is set but has_kids is false; child rules will not apply")
	}

	for i, pt := range profile.OtherPetTypes {
		if !pt.IsValid() {
			warnings = append(warnings, unknownValue(fmt.Sprintf("other_pet_types[%d]", i), pt))
		}
	}

	if !profile.HomeType.IsValid() {
		warnings = append(warnings, unknownValue("home_type", profile.HomeType))
	}

	if !profile.YardSize.IsValid() {
		warnings = append(warnings, unknownValue("yard_size", profile.YardSize))
	}

	if profile.DailyExerciseMinutes < 0 {
		warnings = append(warnings, fmt.Sprintf("daily_exercise_minutes is negative (%d)", profile.DailyExerciseMinutes))
	}

	if !profile.WorkSchedule.IsValid() {
		warnings = append(warnings, unknownValue("work_schedule", profile.WorkSchedule))
	}

	if !profile.Allergies.IsValid() {
		warnings = append(warnings, unknownValue("allergies", profile.Allergies))
	}

	if !profile.NoiseTolerance.IsValid() {
		warnings = append(warnings, unknownValue("noise_tolerance", profile.NoiseTolerance))
	}

	if !profile.TrainingCommitment.IsValid() {
		warnings = append(warnings, unknownValue("training_commitment", profile.TrainingCommitment))
	}

	// Absent age and size are reported by the completeness check instead.
	if animal.Age != "" && !animal.Age.IsValid() {
		warnings = append(warnings, unknownValue("animal.age", animal.Age))
	}

	if animal.Size != "" && !animal.Size.IsValid() {
		warnings = append(warnings, unknownValue("animal.size", animal.Size))
	}

	return warnings
}

func unknownValue[T ~string](field string, value T) string {
	return fmt.Sprintf("%s has unrecognised value %q and will not match any rule", field, string(value))
}
