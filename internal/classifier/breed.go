// Package classifier derives behavioural tendencies of an animal from its
// breed text, description, age bucket and size bucket.
//
// Matching is case-insensitive substring containment over fixed keyword
// lists. It is not tokenised: "terrier" matches "Terrier Mix" and any other
// breed containing that substring. The lists are the classifier's ground
// truth and overlap on purpose (husky is high-energy, vocal, a heavy shedder
// and stubborn).
package classifier

import (
	"strings"

	"github.com/furfindr/internal/domain"
)

// Keyword lists, in match order.
var (
	HighEnergyBreeds = []string{
		"husky", "border collie", "australian shepherd", "jack russell",
		"cattle dog", "malinois", "pointer", "setter", "retriever", "weimaraner",
		"springer spaniel", "vizsla", "dalmatian", "boxer",
	}

	WorkingHerdingBreeds = []string{
		"border collie", "australian shepherd", "cattle dog", "german shepherd",
		"belgian malinois", "collie", "corgi", "heeler", "sheepdog",
	}

	VocalBreeds = []string{
		"husky", "beagle", "hound", "chihuahua", "terrier", "schnauzer",
		"pomeranian", "dachshund", "basset", "coonhound",
	}

	HeavyShedderBreeds = []string{
		"husky", "german shepherd", "golden retriever", "labrador", "corgi",
		"chow", "akita", "malamute", "samoyed", "saint bernard",
	}

	SheddingDescriptionTerms = []string{"sheds", "shedding"}

	StubbornBreeds = []string{
		"husky", "shiba inu", "basenji", "chow", "afghan hound",
		"terrier", "bulldog", "beagle", "dachshund", "pekingese",
	}

	OnlyPetPhrases = []string{
		"only pet", "no other animals", "no other pets",
		"cat aggressive", "dog aggressive", "must be alone",
	}

	AnxietyTerms = []string{"shy", "anxious"}
)

// containsAny reports whether text contains any keyword, ignoring case.
// Keywords are stored lower-case.
func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsHighEnergy reports a high-energy breed, or a juvenile large animal.
func IsHighEnergy(a domain.AnimalRecord) bool {
	if containsAny(a.BreedText(), HighEnergyBreeds) {
		return true
	}
	return a.Age.IsJuvenile() && a.Size.IsLarge()
}

// IsWorkingHerding reports a working or herding breed.
func IsWorkingHerding(a domain.AnimalRecord) bool {
	return containsAny(a.BreedText(), WorkingHerdingBreeds)
}

// IsVocal reports a breed prone to barking or howling.
func IsVocal(a domain.AnimalRecord) bool {
	return containsAny(a.BreedText(), VocalBreeds)
}

// IsHeavyShedder reports a heavy-shedding breed or a description that
// mentions shedding.
func IsHeavyShedder(a domain.AnimalRecord) bool {
	return containsAny(a.BreedText(), HeavyShedderBreeds) ||
		containsAny(a.DescriptionText(), SheddingDescriptionTerms)
}

// IsStubborn reports a stubborn or independent breed.
func IsStubborn(a domain.AnimalRecord) bool {
	return containsAny(a.BreedText(), StubbornBreeds)
}

// RequiresOnlyPet reports a description saying the animal must live alone.
func RequiresOnlyPet(a domain.AnimalRecord) bool {
	return containsAny(a.DescriptionText(), OnlyPetPhrases)
}

// MentionsAnxiety reports a description calling the animal shy or anxious.
func MentionsAnxiety(a domain.AnimalRecord) bool {
	return containsAny(a.DescriptionText(), AnxietyTerms)
}

// Traits holds every predicate for one animal.
type Traits struct {
	HighEnergy      bool `json:"high_energy"`
	WorkingHerding  bool `json:"working_herding"`
	Vocal           bool `json:"vocal"`
	HeavyShedder    bool `json:"heavy_shedder"`
	Stubborn        bool `json:"stubborn"`
	RequiresOnlyPet bool `json:"requires_only_pet"`
	Anxious         bool `json:"anxious"`
}

// Classify evaluates all predicates once.
func Classify(a domain.AnimalRecord) Traits {
	return Traits{
		HighEnergy:      IsHighEnergy(a),
		WorkingHerding:  IsWorkingHerding(a),
		Vocal:           IsVocal(a),
		HeavyShedder:    IsHeavyShedder(a),
		Stubborn:        IsStubborn(a),
		RequiresOnlyPet: RequiresOnlyPet(a),
		Anxious:         MentionsAnxiety(a),
	}
}
