// Package domain contains the core domain models and types.
// These models describe adopters, animals and compatibility verdicts and are
// independent of any infrastructure concerns.
package domain

import (
	"strings"
	"time"
)

// ExperienceLevel describes how much pet-keeping experience an adopter has.
type ExperienceLevel string

const (
	ExperienceFirstTime ExperienceLevel = "first_time"
	ExperienceSome      ExperienceLevel = "some_experience"
	ExperienceExpert    ExperienceLevel = "experienced"
)

// IsValid checks if the experience level is one of the allowed values.
func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceFirstTime, ExperienceSome, ExperienceExpert:
		return true
	default:
		return false
	}
}

// KidAge is an age group of children living in the household.
type KidAge string

const (
	KidToddler   KidAge = "toddler"
	KidSchoolAge KidAge = "school_age"
	KidTeen      KidAge = "teen"
)

// IsValid checks if the kid age group is one of the allowed values.
func (k KidAge) IsValid() bool {
	switch k {
	case KidToddler, KidSchoolAge, KidTeen:
		return true
	default:
		return false
	}
}

// PetType is a kind of animal already living in the household.
type PetType string

const (
	PetDog         PetType = "dog"
	PetCat         PetType = "cat"
	PetSmallAnimal PetType = "small_animal"
	PetBird        PetType = "bird"
)

// IsValid checks if the pet type is one of the allowed values.
func (p PetType) IsValid() bool {
	switch p {
	case PetDog, PetCat, PetSmallAnimal, PetBird:
		return true
	default:
		return false
	}
}

// HomeType is the kind of dwelling the adopter lives in.
type HomeType string

const (
	HomeApartment HomeType = "apartment"
	HomeTownhouse HomeType = "townhouse"
	HomeHouse     HomeType = "house"
	HomeCondo     HomeType = "condo"
)

// IsValid checks if the home type is one of the allowed values.
func (h HomeType) IsValid() bool {
	switch h {
	case HomeApartment, HomeTownhouse, HomeHouse, HomeCondo:
		return true
	default:
		return false
	}
}

// YardSize is the amount of private outdoor space.
type YardSize string

const (
	YardNone   YardSize = "none"
	YardSmall  YardSize = "small"
	YardMedium YardSize = "medium"
	YardLarge  YardSize = "large"
)

// IsValid checks if the yard size is one of the allowed values.
func (y YardSize) IsValid() bool {
	switch y {
	case YardNone, YardSmall, YardMedium, YardLarge:
		return true
	default:
		return false
	}
}

// WorkSchedule describes how much of the day the adopter is away.
type WorkSchedule string

const (
	ScheduleFullTimeOffice WorkSchedule = "full_time_office"
	ScheduleFullTimeHome   WorkSchedule = "full_time_home"
	SchedulePartTime       WorkSchedule = "part_time"
	ScheduleFlexible       WorkSchedule = "flexible"
	ScheduleRetired        WorkSchedule = "retired"
)

// IsValid checks if the work schedule is one of the allowed values.
func (w WorkSchedule) IsValid() bool {
	switch w {
	case ScheduleFullTimeOffice, ScheduleFullTimeHome, SchedulePartTime, ScheduleFlexible, ScheduleRetired:
		return true
	default:
		return false
	}
}

// AllergyLevel is the severity of pet allergies in the household.
type AllergyLevel string

const (
	AllergyNone     AllergyLevel = "none"
	AllergyMild     AllergyLevel = "mild"
	AllergyModerate AllergyLevel = "moderate"
	AllergySevere   AllergyLevel = "severe"
)

// IsValid checks if the allergy level is one of the allowed values.
func (a AllergyLevel) IsValid() bool {
	switch a {
	case AllergyNone, AllergyMild, AllergyModerate, AllergySevere:
		return true
	default:
		return false
	}
}

// Present reports whether the household has any allergy at all.
func (a AllergyLevel) Present() bool {
	switch a {
	case AllergyMild, AllergyModerate, AllergySevere:
		return true
	default:
		return false
	}
}

// NoiseTolerance is how well the household copes with barking and howling.
type NoiseTolerance string

const (
	NoiseLow    NoiseTolerance = "low"
	NoiseMedium NoiseTolerance = "medium"
	NoiseHigh   NoiseTolerance = "high"
)

// IsValid checks if the noise tolerance is one of the allowed values.
func (n NoiseTolerance) IsValid() bool {
	switch n {
	case NoiseLow, NoiseMedium, NoiseHigh:
		return true
	default:
		return false
	}
}

// TrainingCommitment is how much training effort the adopter will invest.
type TrainingCommitment string

const (
	TrainingWilling  TrainingCommitment = "willing"
	TrainingSomewhat TrainingCommitment = "somewhat"
	TrainingLimited  TrainingCommitment = "limited"
)

// IsValid checks if the training commitment is one of the allowed values.
func (t TrainingCommitment) IsValid() bool {
	switch t {
	case TrainingWilling, TrainingSomewhat, TrainingLimited:
		return true
	default:
		return false
	}
}

// AnimalAge is the age bucket reported by the pet listing service.
type AnimalAge string

const (
	AgeBaby   AnimalAge = "Baby"
	AgeYoung  AnimalAge = "Young"
	AgeAdult  AnimalAge = "Adult"
	AgeSenior AnimalAge = "Senior"
)

// IsValid checks if the age bucket is one of the allowed values.
func (a AnimalAge) IsValid() bool {
	switch a {
	case AgeBaby, AgeYoung, AgeAdult, AgeSenior:
		return true
	default:
		return false
	}
}

// IsJuvenile reports whether the age bucket is Baby or Young.
func (a AnimalAge) IsJuvenile() bool {
	return a == AgeBaby || a == AgeYoung
}

// AnimalSize is the size bucket reported by the pet listing service.
type AnimalSize string

const (
	SizeSmall      AnimalSize = "Small"
	SizeMedium     AnimalSize = "Medium"
	SizeLarge      AnimalSize = "Large"
	SizeExtraLarge AnimalSize = "Extra Large"
)

// IsValid checks if the size bucket is one of the allowed values.
func (s AnimalSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	default:
		return false
	}
}

// IsLarge reports whether the size bucket is Large or Extra Large.
func (s AnimalSize) IsLarge() bool {
	return s == SizeLarge || s == SizeExtraLarge
}

// HouseholdProfile describes an adopter's living situation, experience and
// constraints. Values outside the enumerated domains are tolerated and simply
// never match a rule.
type HouseholdProfile struct {
	ExperienceLevel      ExperienceLevel    `json:"experience_level" yaml:"experience_level"`
	HasKids              bool               `json:"has_kids" yaml:"has_kids"`
	KidAges              []KidAge           `json:"kid_ages" yaml:"kid_ages"`
	HasOtherPets         bool               `json:"has_other_pets" yaml:"has_other_pets"`
	OtherPetTypes        []PetType          `json:"other_pet_types" yaml:"other_pet_types"`
	HomeType             HomeType           `json:"home_type" yaml:"home_type"`
	YardSize             YardSize           `json:"yard_size" yaml:"yard_size"`
	DailyExerciseMinutes int                `json:"daily_exercise_minutes" yaml:"daily_exercise_minutes"`
	WorkSchedule         WorkSchedule       `json:"work_schedule" yaml:"work_schedule"`
	Allergies            AllergyLevel       `json:"allergies" yaml:"allergies"`
	NoiseTolerance       NoiseTolerance     `json:"noise_tolerance" yaml:"noise_tolerance"`
	TrainingCommitment   TrainingCommitment `json:"training_commitment" yaml:"training_commitment"`
}

// DefaultProfile returns the profile used before an adopter submits any
// preferences.
func DefaultProfile() HouseholdProfile {
	return HouseholdProfile{
		ExperienceLevel:      ExperienceFirstTime,
		KidAges:              []KidAge{},
		OtherPetTypes:        []PetType{},
		HomeType:             HomeApartment,
		YardSize:             YardNone,
		DailyExerciseMinutes: 30,
		WorkSchedule:         ScheduleFullTimeOffice,
		Allergies:            AllergyNone,
		NoiseTolerance:       NoiseMedium,
		TrainingCommitment:   TrainingWilling,
	}
}

// HasKidAge reports whether the given age group is listed for the household.
func (p HouseholdProfile) HasKidAge(age KidAge) bool {
	for _, a := range p.KidAges {
		if a == age {
			return true
		}
	}
	return false
}

// AnimalRecord is a read-only snapshot of one adoptable animal as supplied by
// the pet repository. Breed and Description may be absent.
type AnimalRecord struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Species     string     `json:"species" yaml:"species"`
	Breed       *string    `json:"breed" yaml:"breed"`
	Age         AnimalAge  `json:"age" yaml:"age"`
	Size        AnimalSize `json:"size" yaml:"size"`
	Gender      string     `json:"gender" yaml:"gender"`
	Description *string    `json:"description" yaml:"description"`
}

// BreedText returns the breed, or "" when absent.
func (a AnimalRecord) BreedText() string {
	if a.Breed == nil {
		return ""
	}
	return *a.Breed
}

// DescriptionText returns the description, or "" when absent.
func (a AnimalRecord) DescriptionText() string {
	if a.Description == nil {
		return ""
	}
	return *a.Description
}

// DisplayName returns the animal's name, falling back to "This pet".
func (a AnimalRecord) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}
	return "This pet"
}

// RiskLevel represents the three-tier risk bucket.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// IsValid checks if the risk level value is one of the allowed values.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// TriggeredRule is one rule that fired for a profile/animal pair.
type TriggeredRule struct {
	// RuleID is the stable snake_case identifier used by the trigger log.
	RuleID string `json:"rule_id"`

	// RuleName is the human-readable rule name.
	RuleName string `json:"rule_name"`

	// Concern explains why the combination tends to fail.
	Concern string `json:"concern"`

	// Guidance lists actionable steps in display order.
	Guidance []string `json:"guidance"`

	// Weight is the fixed number of risk points the rule contributes.
	Weight int `json:"weight"`
}

// RiskResult is the verdict for one profile/animal pair. Presentation and
// notification collaborators consume it verbatim.
type RiskResult struct {
	PetName             string          `json:"pet_name"`
	PetBreed            string          `json:"pet_breed"`
	RiskScore           int             `json:"risk_score"`
	RiskLevel           RiskLevel       `json:"risk_level"`
	Summary             string          `json:"summary"`
	TriggeredRules      []TriggeredRule `json:"triggered_rules"`
	TotalRulesTriggered int             `json:"total_rules_triggered"`
}

// DisplayScore clamps the score to max for presentation. The underlying
// RiskScore is never altered.
func (r RiskResult) DisplayScore(max int) int {
	if max > 0 && r.RiskScore > max {
		return max
	}
	return r.RiskScore
}

// CompatibilityScore is the inverse of DisplayScore on a 0..max scale.
func (r RiskResult) CompatibilityScore(max int) int {
	return max - r.DisplayScore(max)
}

// TriggerEntry records one rule firing. It carries no PII.
type TriggerEntry struct {
	RuleID    string    `json:"rule_id"`
	Timestamp time.Time `json:"timestamp"`
}

// RuleFrequency pairs a rule id with how often it fired.
type RuleFrequency struct {
	RuleID string `json:"rule_id"`
	Count  int    `json:"count"`
}

// TriggerStats summarises the trigger log.
type TriggerStats struct {
	TotalTriggers int            `json:"total_triggers"`
	UniqueRules   int            `json:"unique_rules"`
	RuleFrequency map[string]int `json:"rule_frequency"`

	// MostTriggered is nil when the log is empty.
	MostTriggered *RuleFrequency `json:"most_triggered"`
}
