package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"homestay/internal/adapters/observability"
	"homestay/internal/domain"
)

// Directory is the write side of the listing directory: creation, partial
// updates, hard deletes and the booked/available lifecycle.
type Directory struct {
	repo  domain.AccommodationRepository
	cache domain.Cache
}

func NewDirectory(r domain.AccommodationRepository, c domain.Cache) *Directory {
	return &Directory{repo: r, cache: c}
}

func (s *Directory) Create(ctx context.Context, n domain.NewAccommodation) (domain.Accommodation, error) {
	start := time.Now()
	a, err := s.repo.Create(ctx, n)
	observability.ObserveStore("create", time.Since(start), err)
	if err != nil {
		return domain.Accommodation{}, err
	}
	s.invalidateListings(ctx)
	return a, nil
}

func (s *Directory) Update(ctx context.Context, id uuid.UUID, u domain.AccommodationUpdate) (domain.Accommodation, error) {
	start := time.Now()
	a, err := s.repo.Update(ctx, id, u)
	observability.ObserveStore("update", time.Since(start), err)
	if err != nil {
		return domain.Accommodation{}, err
	}
	s.invalidateRecord(ctx, id)
	s.invalidateListings(ctx)
	return a, nil
}

func (s *Directory) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	start := time.Now()
	ok, err := s.repo.Delete(ctx, id)
	observability.ObserveStore("delete", time.Since(start), err)
	if err != nil {
		return false, err
	}
	if ok {
		s.invalidateRecord(ctx, id)
		s.invalidateListings(ctx)
	}
	return ok, nil
}

// MarkBooked flips a listing to booked. Re-booking an already-booked listing
// is a no-op success; only a missing id fails.
func (s *Directory) MarkBooked(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.setAvailability(ctx, id, false)
}

// MarkAvailable is the inverse transition, idempotent likewise.
func (s *Directory) MarkAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.setAvailability(ctx, id, true)
}

func (s *Directory) setAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error) {
	start := time.Now()
	ok, err := s.repo.SetAvailability(ctx, id, available)
	observability.ObserveStore("set_availability", time.Since(start), err)
	if err != nil {
		return false, err
	}
	if ok {
		s.invalidateRecord(ctx, id)
		s.invalidateListings(ctx)
	}
	return ok, nil
}

// Healthy degrades store failures to false; a health probe must never crash
// the caller.
func (s *Directory) Healthy(ctx context.Context) bool {
	if err := s.repo.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("store health check failed")
		return false
	}
	return true
}

func (s *Directory) invalidateRecord(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, recordKey(id))
}

// invalidateListings clears every listing page the read side is allowed to
// cache (cachedListLimits, all at offset zero). Search results are never
// cached, so nothing else can go stale.
func (s *Directory) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, lim := range cachedListLimits {
		_ = s.cache.Del(ctx, listKey(domain.PageQuery{Limit: lim}))
	}
}

func recordKey(id uuid.UUID) string { return "accommodation:" + id.String() }

func listKey(pg domain.PageQuery) string {
	return fmt.Sprintf("listings:%d:%d", pg.Limit, pg.Offset)
}
