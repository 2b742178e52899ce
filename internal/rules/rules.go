// Package rules provides the household/animal compatibility rule set.
// Every rule is evaluated on every call; triggered weights add linearly.
package rules

import (
	"github.com/furfindr/internal/classifier"
	"github.com/furfindr/internal/domain"
)

// Input is what a rule condition sees for one profile/animal pair.
type Input struct {
	Profile domain.HouseholdProfile
	Animal  domain.AnimalRecord
	Traits  classifier.Traits
}

// Rule represents a single compatibility rule.
type Rule struct {
	// ID is the stable snake_case identifier written to the trigger log.
	ID string

	// Name is a human-readable name for the rule.
	Name string

	// Concern explains why the combination tends to end in a return.
	Concern string

	// Guidance lists what the adopter should do, in display order.
	Guidance []string

	// Weight is the number of risk points the rule contributes.
	Weight int

	// Condition reports whether the rule fires.
	Condition func(in Input) bool
}

// Match checks if the rule fires for the input.
func (r *Rule) Match(in Input) bool {
	return r.Condition != nil && r.Condition(in)
}

// Triggered returns the result entry for a fired rule. Guidance is copied so
// callers cannot alter the rule table.
func (r *Rule) Triggered() domain.TriggeredRule {
	guidance := make([]string, len(r.Guidance))
	copy(guidance, r.Guidance)
	return domain.TriggeredRule{
		RuleID:   r.ID,
		RuleName: r.Name,
		Concern:  r.Concern,
		Guidance: guidance,
		Weight:   r.Weight,
	}
}

// Rule ids.
const (
	IDFirstTimeHighEnergy      = "first_time_high_energy"
	IDYoungChildrenLargeDog    = "young_children_large_dog"
	IDLimitedExerciseWorking   = "limited_exercise_working_breed"
	IDApartmentVocalBreed      = "apartment_vocal_breed"
	IDAllergiesHeavyShedding   = "allergies_heavy_shedding"
	IDNoYardLargeHighEnergy    = "no_yard_large_high_energy"
	IDFullTimeOfficeSeparation = "full_time_office_separation_anxiety"
	IDHasPetsMustBeOnly        = "has_pets_must_be_only"
	IDLimitedTrainingStubborn  = "limited_training_stubborn_breed"
	IDSeniorPetFirstTimeOwner  = "senior_pet_first_time_owner"
)

// MinExerciseMinutes is the daily exercise below which working breeds are a
// concern.
const MinExerciseMinutes = 30

// DefaultRules returns the built-in rule set in evaluation order.
func DefaultRules() []*Rule {
	return []*Rule{
		firstTimeHighEnergy(),
		youngChildrenLargeDog(),
		limitedExerciseWorkingBreed(),
		apartmentVocalBreed(),
		allergiesHeavyShedding(),
		noYardLargeHighEnergy(),
		fullTimeOfficeSeparationAnxiety(),
		hasPetsMustBeOnly(),
		limitedTrainingStubbornBreed(),
		seniorPetFirstTimeOwner(),
	}
}

func firstTimeHighEnergy() *Rule {
	return &Rule{
		ID:      IDFirstTimeHighEnergy,
		Name:    "First-Time Owner + High-Energy Pet",
		Concern: "First-time owners often underestimate the time, energy, and training required for high-energy breeds. This can lead to behavioral issues and early returns.",
		Guidance: []string{
			"Enroll in puppy/dog training classes within first 2 weeks",
			"Commit to 60-90 minutes of daily exercise",
			"Research breed-specific needs and common challenges",
			"Join local dog owner groups for support",
		},
		Weight: 25,
		Condition: func(in Input) bool {
			return in.Profile.ExperienceLevel == domain.ExperienceFirstTime && in.Traits.HighEnergy
		},
	}
}

func youngChildrenLargeDog() *Rule {
	return &Rule{
		ID:      IDYoungChildrenLargeDog,
		Name:    "Young Children + Large Adolescent Dog",
		Concern: "Young dogs are naturally mouthy and jump. Large breeds can easily knock over small children, leading to injuries and fear.",
		Guidance: []string{
			"Work with certified trainer on gentle behavior from day one",
			"Supervise ALL interactions between child and pet",
			"Teach children proper pet handling",
			"Consider waiting until children are older or choosing smaller/calmer pet",
		},
		Weight: 40,
		Condition: func(in Input) bool {
			return in.Profile.HasKids &&
				in.Profile.HasKidAge(domain.KidToddler) &&
				in.Animal.Age.IsJuvenile() &&
				in.Animal.Size.IsLarge()
		},
	}
}

func limitedExerciseWorkingBreed() *Rule {
	return &Rule{
		ID:      IDLimitedExerciseWorking,
		Name:    "Limited Exercise Time + Working/Herding Breed",
		Concern: "Working breeds require significant physical and mental stimulation. Without it, they develop destructive behaviors, anxiety, and can become difficult to manage.",
		Guidance: []string{
			"Increase daily exercise commitment to minimum 60 minutes",
			"Add mental stimulation: puzzle toys, training sessions, nose work",
			"Consider doggy daycare 2-3 times per week",
			"Alternatively, choose a lower-energy breed better suited to lifestyle",
		},
		Weight: 35,
		Condition: func(in Input) bool {
			return in.Profile.DailyExerciseMinutes < MinExerciseMinutes && in.Traits.WorkingHerding
		},
	}
}

func apartmentVocalBreed() *Rule {
	return &Rule{
		ID:      IDApartmentVocalBreed,
		Name:    "Apartment Living + Very Vocal Breed",
		Concern: `Vocal breeds are prone to barking, howling, and "talking." In apartments with shared walls, this leads to neighbor complaints and potential eviction.`,
		Guidance: []string{
			"Budget for professional trainer specializing in quiet commands",
			"Start training immediately upon adoption",
			"Discuss with neighbors upfront about training period",
			"Consider soundproofing measures",
			"Choose quieter breed if noise is dealbreaker",
		},
		Weight: 20,
		Condition: func(in Input) bool {
			return in.Profile.HomeType == domain.HomeApartment &&
				in.Profile.NoiseTolerance == domain.NoiseLow &&
				in.Traits.Vocal
		},
	}
}

func allergiesHeavyShedding() *Rule {
	return &Rule{
		ID:      IDAllergiesHeavyShedding,
		Name:    "Allergies + Heavy Shedding Breed",
		Concern: "Even mild allergies can worsen with constant exposure to dander and shed fur. Severe cases force returns and can affect household health.",
		Guidance: []string{
			"Consult allergist before adoption",
			"Commit to weekly professional grooming",
			"Invest in HEPA air filters for home",
			"Keep pet out of bedrooms",
			"Consider hypoallergenic breeds (Poodle, Bichon, Portuguese Water Dog)",
		},
		Weight: 30,
		Condition: func(in Input) bool {
			return in.Profile.Allergies.Present() && in.Traits.HeavyShedder
		},
	}
}

func noYardLargeHighEnergy() *Rule {
	return &Rule{
		ID:      IDNoYardLargeHighEnergy,
		Name:    "No Yard + Large High-Energy Dog",
		Concern: "Large dogs without outdoor space require multiple daily walks and dedicated exercise time. Easy to under-exercise, leading to behavior problems.",
		Guidance: []string{
			"Commit to 3+ walks daily (morning, midday, evening)",
			"Find nearby dog parks or trails",
			"Budget for dog walker if working full-time",
			"Consider smaller or lower-energy pet",
		},
		Weight: 20,
		Condition: func(in Input) bool {
			return in.Profile.YardSize == domain.YardNone &&
				in.Profile.HomeType == domain.HomeApartment &&
				in.Animal.Size.IsLarge() &&
				in.Animal.Age.IsJuvenile()
		},
	}
}

func fullTimeOfficeSeparationAnxiety() *Rule {
	return &Rule{
		ID:      IDFullTimeOfficeSeparation,
		Name:    "Full-Time Office Work + Separation Anxiety Risk",
		Concern: "Young puppies and anxious pets can develop separation anxiety when left alone for long periods. Results in destructive behavior and stress.",
		Guidance: []string{
			"Arrange for midday dog walker or pet sitter",
			"Consider doggy daycare 3-5 days per week",
			"Crate train properly from day one",
			"Start with shorter absences and gradually increase",
			"Choose more independent adult pet if schedule inflexible",
		},
		Weight: 25,
		Condition: func(in Input) bool {
			return in.Profile.WorkSchedule == domain.ScheduleFullTimeOffice &&
				(in.Animal.Age == domain.AgeBaby || in.Traits.Anxious)
		},
	}
}

func hasPetsMustBeOnly() *Rule {
	return &Rule{
		ID:      IDHasPetsMustBeOnly,
		Name:    "Has Other Pets + Must Be Only Pet",
		Concern: "Direct incompatibility. This pet's behavioral needs conflict with your household situation.",
		Guidance: []string{
			"⚠️ This is a dealbreaker - do not proceed with this match",
			"Search for pets marked as good with other animals",
			"Consult shelter staff if you still want to consider this pet",
		},
		Weight: 50,
		Condition: func(in Input) bool {
			return in.Profile.HasOtherPets && in.Traits.RequiresOnlyPet
		},
	}
}

func limitedTrainingStubbornBreed() *Rule {
	return &Rule{
		ID:      IDLimitedTrainingStubborn,
		Name:    "Limited Training Commitment + Strong-Willed Breed",
		Concern: "Independent breeds require consistent, patient training. Without commitment, they become unmanageable and develop bad habits.",
		Guidance: []string{
			"Reconsider training commitment - these breeds require structure",
			"Hire professional trainer if unable to commit personal time",
			"Choose easier-to-train breed (Golden Retriever, Lab, Poodle)",
			"Read breed-specific training resources before deciding",
		},
		Weight: 20,
		Condition: func(in Input) bool {
			return in.Profile.TrainingCommitment == domain.TrainingLimited && in.Traits.Stubborn
		},
	}
}

func seniorPetFirstTimeOwner() *Rule {
	return &Rule{
		ID:      IDSeniorPetFirstTimeOwner,
		Name:    "Senior Pet + First-Time Owner",
		Concern: "Senior pets may have special medical needs, behavioral quirks from past experiences, and shorter lifespan. First-time owners may be unprepared for costs and emotional aspects.",
		Guidance: []string{
			"Research senior pet care and common health issues",
			"Budget for potential vet expenses (often higher for seniors)",
			"Understand end-of-life care may come sooner",
			"Consult with shelter about this specific senior's needs",
			"💙 Senior pets can be wonderful for prepared adopters!",
		},
		Weight: 15,
		Condition: func(in Input) bool {
			return in.Profile.ExperienceLevel == domain.ExperienceFirstTime && in.Animal.Age == domain.AgeSenior
		},
	}
}
