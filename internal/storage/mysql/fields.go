package mysql

import (
	"encoding/json"
	"fmt"

	"homestay/internal/domain"
)

// columnByField is the explicit public-field → storage-column table. The
// persisted column names predate this service (camelCase became snake_case),
// so the mapping is pinned here instead of being derived at runtime.
var columnByField = map[string]string{
	"id":            "id",
	"hostId":        "host_id",
	"maxGuests":     "max_guests",
	"location":      "location",
	"accessibility": "accessibility",
	"petsAllowed":   "pets_allowed",
	"isAvailable":   "is_available",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// ColumnFor maps a public field name to its storage column.
func ColumnFor(field string) (string, bool) {
	col, ok := columnByField[field]
	return col, ok
}

// mustColumn is for call sites where the field name is a compile-time
// constant; an unknown name there is a programming error.
func mustColumn(field string) string {
	col, ok := columnByField[field]
	if !ok {
		panic("mysql: no column mapped for field " + field)
	}
	return col
}

// EncodeLocation serializes the location sub-object to its column form.
func EncodeLocation(l domain.Location) ([]byte, error) {
	return json.Marshal(l)
}

// DecodeLocation accepts whatever shape the driver hands back for the JSON
// column: raw bytes, a string, or an already-parsed map.
func DecodeLocation(v any) (domain.Location, error) {
	switch t := v.(type) {
	case nil:
		return domain.Location{}, nil
	case []byte:
		var l domain.Location
		if err := json.Unmarshal(t, &l); err != nil {
			return domain.Location{}, fmt.Errorf("decode location: %w", err)
		}
		return l, nil
	case string:
		return DecodeLocation([]byte(t))
	case map[string]any:
		l := domain.Location{}
		if s, ok := t["region"].(string); ok {
			l.Region = s
		}
		if s, ok := t["city"].(string); ok {
			l.City = s
		}
		return l, nil
	case domain.Location:
		return t, nil
	default:
		return domain.Location{}, fmt.Errorf("decode location: unsupported type %T", v)
	}
}
