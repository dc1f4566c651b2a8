package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"homestay/internal/app"
	"homestay/internal/domain"
	"homestay/internal/gazetteer"
)

type Handlers struct {
	Q *app.Query
	D *app.Directory
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", h.health)

	s.mux.Route("/v1/accommodations", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
		r.Post("/{id}/book", h.book)
		r.Post("/{id}/release", h.release)
	})

	s.mux.Route("/v1/locations", func(r chi.Router) {
		r.Get("/regions", h.regions)
		r.Get("/regions/{region}/cities", h.cities)
		r.Get("/search", h.searchLocations)
		r.Get("/validate", h.validateLocation)
	})
}

// ---- shared helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the core error taxonomy to HTTP statuses. Validation and
// not-found are distinguishable; anything else stays opaque.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON body failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// ---- accommodation handlers ----

type createRequest struct {
	MaxGuests     int             `json:"maxGuests"`
	Location      domain.Location `json:"location"`
	Accessibility bool            `json:"accessibility"`
	PetsAllowed   bool            `json:"petsAllowed"`
}

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	// The session layer upstream authenticates hosts; by the time a request
	// lands here the host id travels in this header.
	hostID := strings.TrimSpace(r.Header.Get("X-Host-ID"))
	if hostID == "" {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing host identity")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}

	a, err := h.D.Create(r.Context(), domain.NewAccommodation{
		HostID:        hostID,
		MaxGuests:     req.MaxGuests,
		Location:      req.Location,
		Accessibility: req.Accessibility,
		PetsAllowed:   req.PetsAllowed,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a UUID")
		return
	}
	a, err := h.Q.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, a)
}

// list serves the browse/search box: ?region= / ?city= substring search,
// ?accessible=, ?pets=true, or a plain paged listing. All variants return
// available records only, newest first.
func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var items []domain.Accommodation
	var err error
	switch {
	case q.Get("region") != "" || q.Get("city") != "":
		items, err = h.Q.SearchByLocation(r.Context(), domain.LocationFilter{
			Region: q.Get("region"),
			City:   q.Get("city"),
		})
	case q.Get("accessible") != "":
		accessible, perr := strconv.ParseBool(q.Get("accessible"))
		if perr != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Filter", "accessible must be true or false")
			return
		}
		items, err = h.Q.FilterByAccessibility(r.Context(), accessible)
	case q.Get("pets") == "true":
		items, err = h.Q.FilterPetFriendly(r.Context())
	default:
		pg := domain.PageQuery{}
		if ls := q.Get("limit"); ls != "" {
			l, perr := strconv.Atoi(ls)
			if perr != nil || l <= 0 || l > 200 {
				writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
				return
			}
			pg.Limit = l
		}
		if os := q.Get("offset"); os != "" {
			o, perr := strconv.Atoi(os)
			if perr != nil || o < 0 {
				writeProblem(w, http.StatusBadRequest, "Invalid offset", "offset must be a non-negative integer")
				return
			}
			pg.Offset = o
		}
		items, err = h.Q.List(r.Context(), pg)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Accommodation{}
	}
	writeCached(w, r, items)
}

type updateRequest struct {
	MaxGuests     *int             `json:"maxGuests"`
	Location      *domain.Location `json:"location"`
	Accessibility *bool            `json:"accessibility"`
	PetsAllowed   *bool            `json:"petsAllowed"`
	IsAvailable   *bool            `json:"isAvailable"`
}

func (h *Handlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a UUID")
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	a, err := h.D.Update(r.Context(), id, domain.AccommodationUpdate{
		MaxGuests:     req.MaxGuests,
		Location:      req.Location,
		Accessibility: req.Accessibility,
		PetsAllowed:   req.PetsAllowed,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a UUID")
		return
	}
	deleted, err := h.D.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	h.setAvailability(w, r, (*app.Directory).MarkBooked)
}

func (h *Handlers) release(w http.ResponseWriter, r *http.Request) {
	h.setAvailability(w, r, (*app.Directory).MarkAvailable)
}

func (h *Handlers) setAvailability(w http.ResponseWriter, r *http.Request, transition func(*app.Directory, context.Context, uuid.UUID) (bool, error)) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a UUID")
		return
	}
	found, err := transition(h.D, r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- gazetteer handlers ----

func (h *Handlers) regions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, gazetteer.Regions())
}

func (h *Handlers) cities(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	writeJSON(w, http.StatusOK, gazetteer.CitiesInRegion(region))
}

func (h *Handlers) searchLocations(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "q is required")
		return
	}
	writeJSON(w, http.StatusOK, gazetteer.Search(term))
}

func (h *Handlers) validateLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	valid := gazetteer.Validate(q.Get("region"), q.Get("city"))
	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// ---- health ----

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	if !h.D.Healthy(r.Context()) {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "store unreachable")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
