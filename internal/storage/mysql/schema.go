package mysql

import (
	"context"
	"database/sql"
	"strings"
)

// The region/city predicates run against STORED generated columns so the
// substring filters and their indexes never touch the JSON blob directly.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS accommodations (
  id              CHAR(36)     NOT NULL,
  host_id         VARCHAR(255) NOT NULL,
  max_guests      INT          NOT NULL,
  location        JSON         NOT NULL,
  location_region VARCHAR(100) GENERATED ALWAYS AS (JSON_UNQUOTE(JSON_EXTRACT(location, '$.region'))) STORED,
  location_city   VARCHAR(100) GENERATED ALWAYS AS (JSON_UNQUOTE(JSON_EXTRACT(location, '$.city'))) STORED,
  accessibility   BOOLEAN      NOT NULL DEFAULT FALSE,
  pets_allowed    BOOLEAN      NOT NULL DEFAULT FALSE,
  is_available    BOOLEAN      NOT NULL DEFAULT TRUE,
  created_at      TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
  updated_at      TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
  PRIMARY KEY (id),
  KEY idx_accommodations_host_id      (host_id),
  KEY idx_accommodations_is_available (is_available),
  KEY idx_accommodations_region       (location_region),
  KEY idx_accommodations_city         (location_city),
  KEY idx_accommodations_created_at   (created_at DESC),
  CONSTRAINT chk_accommodations_max_guests CHECK (max_guests BETWEEN 1 AND 20)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

// EnsureSchema creates the accommodations table and its indexes if they do
// not exist yet. Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, strings.TrimSpace(createTableSQL))
	return err
}
