package service

import (
	"context"

	"github.com/furfindr/internal/domain"
)

// PetRepository supplies adoptable animals. The listing store behind it is
// owned by the ingestion pipeline.
type PetRepository interface {
	// List returns up to limit animals currently available for adoption.
	List(ctx context.Context, limit int) ([]domain.AnimalRecord, error)
}

// ProfileStore keeps an adopter's household profile between sessions.
type ProfileStore interface {
	// Load returns the stored profile, or DefaultProfile when none exists.
	Load(ctx context.Context, adopterID string) (domain.HouseholdProfile, error)

	// Save replaces the stored profile.
	Save(ctx context.Context, adopterID string, profile domain.HouseholdProfile) error
}

// Notifier delivers an assessment to an adopter, for example as a
// compatibility email. Results are sent verbatim.
type Notifier interface {
	Notify(ctx context.Context, adopterID string, assessment Assessment) error
}
