// Package textnorm prepares free-text listing fields for keyword matching.
package textnorm

import "strings"

// Normalizer trims free text. It never shortens content: keyword matching
// runs over the whole field.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize trims surrounding whitespace.
func (n *Normalizer) Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Ptr normalises an optional string and keeps absence as nil.
func (n *Normalizer) Ptr(s *string) *string {
	if s == nil {
		return nil
	}
	out := n.Normalize(*s)
	return &out
}

// Stats describes what normalisation did to one field.
type Stats struct {
	OriginalSize   int
	NormalizedSize int
}

// NormalizeWithStats normalises s and reports its size before and after.
func (n *Normalizer) NormalizeWithStats(s string) (string, Stats) {
	out := n.Normalize(s)
	return out, Stats{
		OriginalSize:   len(s),
		NormalizedSize: len(out),
	}
}
