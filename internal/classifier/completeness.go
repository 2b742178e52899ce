package classifier

import (
	"math"
	"strings"

	"github.com/furfindr/internal/domain"
)

// Confidence grades how much of an animal record the rules could use.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Completeness reports which rule-relevant fields of a record are usable.
// Missing fields make rules silently not match, so a low score here means the
// risk verdict is optimistic.
type Completeness struct {
	Confidence    Confidence `json:"confidence"`
	Percent       float64    `json:"percent"`
	MissingFields []string   `json:"missing_fields"`
}

// Assess grades the record's breed, age, size and description.
func Assess(a domain.AnimalRecord) Completeness {
	checks := []struct {
		field string
		ok    bool
	}{
		{"breed", strings.TrimSpace(a.BreedText()) != ""},
		{"age", a.Age.IsValid()},
		{"size", a.Size.IsValid()},
		{"description", strings.TrimSpace(a.DescriptionText()) != ""},
	}

	missing := []string{}
	present := 0
	for _, c := range checks {
		if c.ok {
			present++
		} else {
			missing = append(missing, c.field)
		}
	}

	pct := float64(present) / float64(len(checks)) * 100
	conf := ConfidenceLow
	switch {
	case pct >= 80:
		conf = ConfidenceHigh
	case pct >= 50:
		conf = ConfidenceMedium
	}

	return Completeness{
		Confidence:    conf,
		Percent:       math.Round(pct*10) / 10,
		MissingFields: missing,
	}
}
