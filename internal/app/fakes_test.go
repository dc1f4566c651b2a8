package app_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homestay/internal/domain"
)

// ---- fakes ----

// fakeRepo keeps records in a map and counts calls; good enough to exercise
// the service-layer contracts without a database.
type fakeRepo struct {
	records map[uuid.UUID]domain.Accommodation
	pingErr error

	setAvailabilityCalls int
	getCalls             int
	listCalls            int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[uuid.UUID]domain.Accommodation{}}
}

func (f *fakeRepo) put(a domain.Accommodation) { f.records[a.ID] = a }

func (f *fakeRepo) Create(ctx context.Context, n domain.NewAccommodation) (domain.Accommodation, error) {
	if err := n.Validate(); err != nil {
		return domain.Accommodation{}, err
	}
	now := time.Now().UTC()
	a := domain.Accommodation{
		ID:            uuid.New(),
		HostID:        n.HostID,
		MaxGuests:     n.MaxGuests,
		Location:      n.Location,
		Accessibility: n.Accessibility,
		PetsAllowed:   n.PetsAllowed,
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.put(a)
	return a, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, u domain.AccommodationUpdate) (domain.Accommodation, error) {
	if err := u.Validate(); err != nil {
		return domain.Accommodation{}, err
	}
	a, ok := f.records[id]
	if !ok {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	if u.Empty() {
		return a, nil
	}
	if u.MaxGuests != nil {
		a.MaxGuests = *u.MaxGuests
	}
	if u.Location != nil {
		a.Location = *u.Location
	}
	if u.Accessibility != nil {
		a.Accessibility = *u.Accessibility
	}
	if u.PetsAllowed != nil {
		a.PetsAllowed = *u.PetsAllowed
	}
	if u.IsAvailable != nil {
		a.IsAvailable = *u.IsAvailable
	}
	a.UpdatedAt = a.UpdatedAt.Add(time.Millisecond)
	f.put(a)
	return a, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.records[id]
	delete(f.records, id)
	return ok, nil
}

func (f *fakeRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error) {
	f.setAvailabilityCalls++
	a, ok := f.records[id]
	if !ok {
		return false, nil
	}
	a.IsAvailable = available
	a.UpdatedAt = a.UpdatedAt.Add(time.Millisecond)
	f.put(a)
	return true, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Accommodation, error) {
	f.getCalls++
	a, ok := f.records[id]
	if !ok {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) List(ctx context.Context, pg domain.PageQuery) ([]domain.Accommodation, error) {
	f.listCalls++
	var out []domain.Accommodation
	for _, a := range f.records {
		if a.IsAvailable {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) SearchByLocation(ctx context.Context, fl domain.LocationFilter) ([]domain.Accommodation, error) {
	return nil, nil
}

func (f *fakeRepo) FilterByAccessibility(ctx context.Context, accessible bool) ([]domain.Accommodation, error) {
	return nil, nil
}

func (f *fakeRepo) FilterPetFriendly(ctx context.Context) ([]domain.Accommodation, error) {
	return nil, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error { return f.pingErr }

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Accommodation:
		*d = v.(domain.Accommodation)
	case *[]domain.Accommodation:
		*d = v.([]domain.Accommodation)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}
