package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"homestay/internal/domain"
)

// Repo is the canonical accommodation store. Each method is a single
// statement; atomicity per record comes from the database, not from here.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// now returns the mutation timestamp at the column's microsecond precision
// so a round-tripped record compares equal to the one we return.
func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

func (r *Repo) Create(ctx context.Context, n domain.NewAccommodation) (domain.Accommodation, error) {
	if err := n.Validate(); err != nil {
		return domain.Accommodation{}, err
	}
	loc := domain.Location{
		Region: strings.TrimSpace(n.Location.Region),
		City:   strings.TrimSpace(n.Location.City),
	}
	blob, err := EncodeLocation(loc)
	if err != nil {
		return domain.Accommodation{}, err
	}

	a := domain.Accommodation{
		ID:            uuid.New(),
		HostID:        n.HostID,
		MaxGuests:     n.MaxGuests,
		Location:      loc,
		Accessibility: n.Accessibility,
		PetsAllowed:   n.PetsAllowed,
		IsAvailable:   true,
	}
	ts := now()
	a.CreatedAt, a.UpdatedAt = ts, ts

	_, err = r.db.ExecContext(ctx, insertSQL,
		a.ID, a.HostID, a.MaxGuests, blob,
		a.Accessibility, a.PetsAllowed, a.IsAvailable,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return domain.Accommodation{}, err
	}
	return a, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Accommodation, error) {
	row := r.db.QueryRowContext(ctx, getByIDSQL, id)
	a, err := scanRow(row)
	if err == sql.ErrNoRows {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	return a, err
}

func (r *Repo) List(ctx context.Context, pg domain.PageQuery) ([]domain.Accommodation, error) {
	pg = pg.Normalize()
	return r.queryMany(ctx, listSQL, pg.Limit, pg.Offset)
}

func (r *Repo) SearchByLocation(ctx context.Context, f domain.LocationFilter) ([]domain.Accommodation, error) {
	query := byLocationBase
	args := make([]any, 0, 2)
	if f.Region != "" {
		query += regionLikeClause
		args = append(args, likeEscape(f.Region))
	}
	if f.City != "" {
		query += cityLikeClause
		args = append(args, likeEscape(f.City))
	}
	query += byLocationOrder
	return r.queryMany(ctx, query, args...)
}

func (r *Repo) FilterByAccessibility(ctx context.Context, accessible bool) ([]domain.Accommodation, error) {
	return r.queryMany(ctx, byAccessibilitySQL, accessible)
}

func (r *Repo) FilterPetFriendly(ctx context.Context) ([]domain.Accommodation, error) {
	return r.queryMany(ctx, petFriendlySQL)
}

// Update applies a sparse change set in one statement. An empty set is a
// plain read: no write happens and updated_at stays put.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, u domain.AccommodationUpdate) (domain.Accommodation, error) {
	if err := u.Validate(); err != nil {
		return domain.Accommodation{}, err
	}
	if u.Empty() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	assign := func(field string, v any) {
		sets = append(sets, mustColumn(field)+" = ?")
		args = append(args, v)
	}

	if u.MaxGuests != nil {
		assign("maxGuests", *u.MaxGuests)
	}
	if u.Location != nil {
		// trim the same way Create does so a patch can't persist padding
		loc := domain.Location{
			Region: strings.TrimSpace(u.Location.Region),
			City:   strings.TrimSpace(u.Location.City),
		}
		blob, err := EncodeLocation(loc)
		if err != nil {
			return domain.Accommodation{}, err
		}
		assign("location", blob)
	}
	if u.Accessibility != nil {
		assign("accessibility", *u.Accessibility)
	}
	if u.PetsAllowed != nil {
		assign("petsAllowed", *u.PetsAllowed)
	}
	if u.IsAvailable != nil {
		assign("isAvailable", *u.IsAvailable)
	}
	assign("updatedAt", now())
	args = append(args, id)

	query := "UPDATE accommodations SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Accommodation{}, err
	}
	// DSN carries clientFoundRows=true, so affected == matched here.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SetAvailability flips the booked/available flag. Success depends only on
// the record existing; setting the state it is already in is a no-op success.
func (r *Repo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, setAvailabilitySQL, available, now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

// ---- scanning ----

type scanner interface{ Scan(dst ...any) error }

func scanRow(s scanner) (domain.Accommodation, error) {
	var a domain.Accommodation
	var locRaw []byte
	if err := s.Scan(
		&a.ID,
		&a.HostID,
		&a.MaxGuests,
		&locRaw,
		&a.Accessibility,
		&a.PetsAllowed,
		&a.IsAvailable,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return domain.Accommodation{}, err
	}
	loc, err := DecodeLocation(locRaw)
	if err != nil {
		return domain.Accommodation{}, err
	}
	a.Location = loc
	return a, nil
}

func (r *Repo) queryMany(ctx context.Context, query string, args ...any) ([]domain.Accommodation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Accommodation
	for rows.Next() {
		a, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// likeEscape neutralizes LIKE metacharacters in user-supplied search terms.
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
