package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccommodationRepository is the single storage abstraction for the
// directory. Every method maps to one atomic statement against the store;
// no caller-side read-modify-write.
type AccommodationRepository interface {
	// Write paths
	Create(ctx context.Context, n NewAccommodation) (Accommodation, error)
	Update(ctx context.Context, id uuid.UUID, u AccommodationUpdate) (Accommodation, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error)

	// Read paths
	GetByID(ctx context.Context, id uuid.UUID) (Accommodation, error)
	List(ctx context.Context, pg PageQuery) ([]Accommodation, error)
	SearchByLocation(ctx context.Context, f LocationFilter) ([]Accommodation, error)
	FilterByAccessibility(ctx context.Context, accessible bool) ([]Accommodation, error)
	FilterPetFriendly(ctx context.Context) ([]Accommodation, error)

	// Ping reports store reachability; health checks degrade on error.
	Ping(ctx context.Context) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// LocationFilter matches available listings whose region/city contain the
// given terms as case-insensitive substrings. Empty terms are skipped; both
// present means both must match.
type LocationFilter struct {
	Region string
	City   string
}

type PageQuery struct {
	Limit  int
	Offset int
}

const DefaultPageLimit = 50

// Normalize clamps a page query to sane bounds.
func (pg PageQuery) Normalize() PageQuery {
	if pg.Limit <= 0 {
		pg.Limit = DefaultPageLimit
	}
	if pg.Limit > 200 {
		pg.Limit = 200
	}
	if pg.Offset < 0 {
		pg.Offset = 0
	}
	return pg
}
