package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"homestay/internal/adapters/observability"
	"homestay/internal/domain"
)

// Query is the read side. Single-record reads and the default listing pages
// go through the cache; search results vary too much to be worth caching.
type Query struct {
	repo     domain.AccommodationRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQuery(r domain.AccommodationRepository, c domain.Cache, ttl time.Duration) *Query {
	return &Query{repo: r, cache: c, cacheTTL: ttl}
}

// cachedListLimits are the only listing page shapes the cache may hold, all
// at offset zero. The write side clears exactly this set on every mutation,
// so a page outside it must never be cached or it can go stale.
var cachedListLimits = [...]int{domain.DefaultPageLimit, 100, 200}

func listCacheable(pg domain.PageQuery) bool {
	if pg.Offset != 0 {
		return false
	}
	for _, l := range cachedListLimits {
		if pg.Limit == l {
			return true
		}
	}
	return false
}

func (s *Query) GetByID(ctx context.Context, id uuid.UUID) (domain.Accommodation, error) {
	key := recordKey(id)
	var a domain.Accommodation
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &a); ok {
			return a, nil
		}
	}
	start := time.Now()
	a, err := s.repo.GetByID(ctx, id)
	observability.ObserveStore("get_by_id", time.Since(start), err)
	if err != nil {
		return domain.Accommodation{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, a, int(s.cacheTTL.Seconds()))
	}
	return a, nil
}

func (s *Query) List(ctx context.Context, pg domain.PageQuery) ([]domain.Accommodation, error) {
	pg = pg.Normalize()
	key := listKey(pg)
	cacheable := s.cache != nil && listCacheable(pg)
	if cacheable {
		var cached []domain.Accommodation
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	start := time.Now()
	items, err := s.repo.List(ctx, pg)
	observability.ObserveStore("list", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if cacheable {
		// copy before caching so callers can't mutate the cached backing array
		cp := make([]domain.Accommodation, len(items))
		copy(cp, items)

		// size guard: don't shove unbounded pages into redis
		if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
			_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
		}
	}
	return items, nil
}

func (s *Query) SearchByLocation(ctx context.Context, f domain.LocationFilter) ([]domain.Accommodation, error) {
	start := time.Now()
	items, err := s.repo.SearchByLocation(ctx, f)
	observability.ObserveStore("search_by_location", time.Since(start), err)
	return items, err
}

func (s *Query) FilterByAccessibility(ctx context.Context, accessible bool) ([]domain.Accommodation, error) {
	start := time.Now()
	items, err := s.repo.FilterByAccessibility(ctx, accessible)
	observability.ObserveStore("filter_accessibility", time.Since(start), err)
	return items, err
}

func (s *Query) FilterPetFriendly(ctx context.Context) ([]domain.Accommodation, error) {
	start := time.Now()
	items, err := s.repo.FilterPetFriendly(ctx)
	observability.ObserveStore("filter_pet_friendly", time.Since(start), err)
	return items, err
}
