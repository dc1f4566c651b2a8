package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinGuests = 1
	MaxGuests = 20

	minPlaceLen = 2
	maxPlaceLen = 100
)

// Location is the structured place a listing lives at. It is persisted as a
// single JSON column, not as two scalar columns.
type Location struct {
	Region string `json:"region"`
	City   string `json:"city"`
}

// Accommodation is a rentable unit registered by a host.
type Accommodation struct {
	ID            uuid.UUID `json:"id"`
	HostID        string    `json:"hostId"`
	MaxGuests     int       `json:"maxGuests"`
	Location      Location  `json:"location"`
	Accessibility bool      `json:"accessibility"`
	PetsAllowed   bool      `json:"petsAllowed"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewAccommodation is the creation input. ID and timestamps are assigned by
// the repository; IsAvailable always starts true.
type NewAccommodation struct {
	HostID        string
	MaxGuests     int
	Location      Location
	Accessibility bool
	PetsAllowed   bool
}

// AccommodationUpdate is a sparse change set. A nil field means "leave it
// alone"; id and createdAt are immutable and deliberately not present.
type AccommodationUpdate struct {
	MaxGuests     *int
	Location      *Location
	Accessibility *bool
	PetsAllowed   *bool
	IsAvailable   *bool
}

// Empty reports whether the update would assign nothing.
func (u AccommodationUpdate) Empty() bool {
	return u.MaxGuests == nil && u.Location == nil &&
		u.Accessibility == nil && u.PetsAllowed == nil && u.IsAvailable == nil
}

func validGuests(n int) error {
	if n < MinGuests || n > MaxGuests {
		return &ValidationError{Field: "maxGuests", Reason: "must be between 1 and 20"}
	}
	return nil
}

func validPlace(field, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	if n := len(v); n < minPlaceLen || n > maxPlaceLen {
		return &ValidationError{Field: field, Reason: "must be between 2 and 100 characters"}
	}
	return nil
}

func (l Location) validate() error {
	if err := validPlace("location.region", l.Region); err != nil {
		return err
	}
	return validPlace("location.city", l.City)
}

// Validate enforces the record invariants once more at the core boundary,
// even though the edge is expected to have validated the request already.
func (n NewAccommodation) Validate() error {
	if strings.TrimSpace(n.HostID) == "" {
		return &ValidationError{Field: "hostId", Reason: "is required"}
	}
	if err := validGuests(n.MaxGuests); err != nil {
		return err
	}
	return n.Location.validate()
}

// Validate checks only the fields the update actually carries.
func (u AccommodationUpdate) Validate() error {
	if u.MaxGuests != nil {
		if err := validGuests(*u.MaxGuests); err != nil {
			return err
		}
	}
	if u.Location != nil {
		if err := u.Location.validate(); err != nil {
			return err
		}
	}
	return nil
}
