// Package rules provides unit tests for the compatibility rule set.
package rules

import (
	"regexp"
	"testing"

	"github.com/furfindr/internal/classifier"
	"github.com/furfindr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func pet(name, breed, desc string, age domain.AnimalAge, size domain.AnimalSize) domain.AnimalRecord {
	return domain.AnimalRecord{
		ID:          "pet-" + name,
		Name:        name,
		Species:     "Dog",
		Breed:       ptr(breed),
		Age:         age,
		Size:        size,
		Description: ptr(desc),
	}
}

// calmProfile triggers nothing against an adult medium mixed breed.
func calmProfile() domain.HouseholdProfile {
	p := domain.DefaultProfile()
	p.ExperienceLevel = domain.ExperienceExpert
	p.HomeType = domain.HomeHouse
	p.YardSize = domain.YardLarge
	p.DailyExerciseMinutes = 60
	p.WorkSchedule = domain.ScheduleFullTimeHome
	return p
}

func TestDefaultRules_Table(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 10)

	wantOrder := []struct {
		id     string
		weight int
	}{
		{IDFirstTimeHighEnergy, 25},
		{IDYoungChildrenLargeDog, 40},
		{IDLimitedExerciseWorking, 35},
		{IDApartmentVocalBreed, 20},
		{IDAllergiesHeavyShedding, 30},
		{IDNoYardLargeHighEnergy, 20},
		{IDFullTimeOfficeSeparation, 25},
		{IDHasPetsMustBeOnly, 50},
		{IDLimitedTrainingStubborn, 20},
		{IDSeniorPetFirstTimeOwner, 15},
	}

	slug := regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)
	seen := map[string]bool{}
	for i, rule := range rules {
		assert.Equal(t, wantOrder[i].id, rule.ID)
		assert.Equal(t, wantOrder[i].weight, rule.Weight, rule.ID)
		assert.Regexp(t, slug, rule.ID)
		assert.NotEqual(t, rule.Name, rule.ID)
		assert.NotEmpty(t, rule.Concern, rule.ID)
		assert.GreaterOrEqual(t, len(rule.Guidance), 2, rule.ID)
		assert.LessOrEqual(t, len(rule.Guidance), 5, rule.ID)
		assert.False(t, seen[rule.ID], "duplicate rule id %s", rule.ID)
		seen[rule.ID] = true
	}
}

func TestRule_Match(t *testing.T) {
	mixAdult := pet("Max", "Mixed Breed", "Friendly", domain.AgeAdult, domain.SizeMedium)

	tests := []struct {
		name     string
		profile  func() domain.HouseholdProfile
		animal   domain.AnimalRecord
		wantRule string
	}{
		{
			name: "first-time owner with pointer",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.ExperienceLevel = domain.ExperienceFirstTime
				return p
			},
			animal:   pet("Ace", "German Shorthaired Pointer", "", domain.AgeAdult, domain.SizeMedium),
			wantRule: IDFirstTimeHighEnergy,
		},
		{
			name: "toddler with young large dog",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.HasKids = true
				p.KidAges = []domain.KidAge{domain.KidSchoolAge, domain.KidToddler}
				return p
			},
			animal:   pet("Moose", "Great Dane", "", domain.AgeYoung, domain.SizeExtraLarge),
			wantRule: IDYoungChildrenLargeDog,
		},
		{
			name: "low exercise with herding breed",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.DailyExerciseMinutes = 29
				return p
			},
			animal:   pet("Pip", "Corgi", "", domain.AgeAdult, domain.SizeSmall),
			wantRule: IDLimitedExerciseWorking,
		},
		{
			name: "apartment with low noise tolerance and beagle",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.HomeType = domain.HomeApartment
				p.NoiseTolerance = domain.NoiseLow
				return p
			},
			animal:   pet("Snoopy", "Beagle", "", domain.AgeAdult, domain.SizeSmall),
			wantRule: IDApartmentVocalBreed,
		},
		{
			name: "mild allergies with shedding description",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.Allergies = domain.AllergyMild
				return p
			},
			animal:   pet("Fluff", "Mixed Breed", "Sheds a lot", domain.AgeAdult, domain.SizeMedium),
			wantRule: IDAllergiesHeavyShedding,
		},
		{
			name: "apartment without yard and young large dog",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.HomeType = domain.HomeApartment
				p.YardSize = domain.YardNone
				return p
			},
			animal:   pet("Tank", "Mastiff", "", domain.AgeYoung, domain.SizeLarge),
			wantRule: IDNoYardLargeHighEnergy,
		},
		{
			name: "office worker with shy adult",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.WorkSchedule = domain.ScheduleFullTimeOffice
				return p
			},
			animal:   pet("Mouse", "Mixed Breed", "A little SHY at first", domain.AgeAdult, domain.SizeSmall),
			wantRule: IDFullTimeOfficeSeparation,
		},
		{
			name: "multi-pet home with dog aggressive description",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.HasOtherPets = true
				p.OtherPetTypes = []domain.PetType{domain.PetDog}
				return p
			},
			animal:   pet("Rex", "Mixed Breed", "Dog aggressive", domain.AgeAdult, domain.SizeMedium),
			wantRule: IDHasPetsMustBeOnly,
		},
		{
			name: "limited training with shiba",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.TrainingCommitment = domain.TrainingLimited
				return p
			},
			animal:   pet("Kabosu", "Shiba Inu", "", domain.AgeAdult, domain.SizeSmall),
			wantRule: IDLimitedTrainingStubborn,
		},
		{
			name: "first-time owner with senior",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.ExperienceLevel = domain.ExperienceFirstTime
				return p
			},
			animal:   pet("Gramps", "Mixed Breed", "", domain.AgeSenior, domain.SizeMedium),
			wantRule: IDSeniorPetFirstTimeOwner,
		},
		{
			name:     "no match",
			profile:  calmProfile,
			animal:   mixAdult,
			wantRule: "",
		},
		{
			name: "toddler listed without has_kids",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.KidAges = []domain.KidAge{domain.KidToddler}
				return p
			},
			animal:   pet("Moose", "Great Dane", "", domain.AgeYoung, domain.SizeExtraLarge),
			wantRule: "",
		},
		{
			name: "exercise exactly at threshold",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.DailyExerciseMinutes = 30
				return p
			},
			animal:   pet("Pip", "Corgi", "", domain.AgeAdult, domain.SizeSmall),
			wantRule: "",
		},
		{
			name: "condo is not an apartment",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.HomeType = domain.HomeCondo
				p.NoiseTolerance = domain.NoiseLow
				return p
			},
			animal:   pet("Snoopy", "Beagle", "", domain.AgeAdult, domain.SizeSmall),
			wantRule: "",
		},
		{
			name: "out of domain allergy value",
			profile: func() domain.HouseholdProfile {
				p := calmProfile()
				p.Allergies = "extreme"
				return p
			},
			animal:   pet("Fluff", "Samoyed", "", domain.AgeAdult, domain.SizeMedium),
			wantRule: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInput(tt.profile(), tt.animal)

			var matched []string
			for _, rule := range DefaultRules() {
				if rule.Match(in) {
					matched = append(matched, rule.ID)
				}
			}

			if tt.wantRule == "" {
				assert.Empty(t, matched)
				return
			}
			assert.Equal(t, []string{tt.wantRule}, matched)
		})
	}
}

func TestRule_TriggeredCopiesGuidance(t *testing.T) {
	rule := DefaultRules()[0]
	tr := rule.Triggered()
	tr.Guidance[0] = "changed"

	assert.NotEqual(t, "changed", rule.Guidance[0])
	assert.Equal(t, rule.ID, tr.RuleID)
	assert.Equal(t, rule.Name, tr.RuleName)
	assert.Equal(t, rule.Weight, tr.Weight)
}

func TestRule_NilConditionNeverMatches(t *testing.T) {
	r := &Rule{ID: "empty", Weight: 10}
	assert.False(t, r.Match(Input{}))
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  domain.RiskLevel
	}{
		{0, domain.RiskLow},
		{15, domain.RiskLow},
		{19, domain.RiskLow},
		{20, domain.RiskMedium},
		{49, domain.RiskMedium},
		{50, domain.RiskHigh},
		{51, domain.RiskHigh},
		{280, domain.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Luna appears to be a good match for your household!", Summary(domain.RiskLow, "Luna"))
	assert.Equal(t, "Luna could work with preparation and commitment to the guidance below.", Summary(domain.RiskMedium, "Luna"))
	assert.Equal(t, "Luna presents significant challenges for your situation. Carefully review concerns before proceeding.", Summary(domain.RiskHigh, "Luna"))
}

func TestAggregate_NameFallback(t *testing.T) {
	result := Aggregate(domain.AnimalRecord{}, nil)

	assert.Equal(t, "This pet", result.PetName)
	assert.Equal(t, "Unknown", result.PetBreed)
	assert.Equal(t, "This pet appears to be a good match for your household!", result.Summary)
	assert.NotNil(t, result.TriggeredRules)
	assert.Equal(t, 0, result.TotalRulesTriggered)
}

func newInput(p domain.HouseholdProfile, a domain.AnimalRecord) Input {
	return Input{Profile: p, Animal: a, Traits: classifier.Classify(a)}
}
