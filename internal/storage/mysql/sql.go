package mysql

// selectCols is the full column list in scan order; keep scanRow in sync.
const selectCols = `id, host_id, max_guests, location, accessibility, pets_allowed, is_available, created_at, updated_at`

const insertSQL = `
INSERT INTO accommodations
  (id, host_id, max_guests, location, accessibility, pets_allowed, is_available, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const getByIDSQL = `
SELECT ` + selectCols + `
FROM accommodations
WHERE id = ?
`

const listSQL = `
SELECT ` + selectCols + `
FROM accommodations
WHERE is_available = TRUE
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

// byLocationBase is extended per filter term in SearchByLocation; the
// generated location_region / location_city columns back these predicates
// with their own indexes.
const byLocationBase = `
SELECT ` + selectCols + `
FROM accommodations
WHERE is_available = TRUE
`

const byLocationOrder = ` ORDER BY created_at DESC, id DESC`

const regionLikeClause = ` AND LOWER(location_region) LIKE CONCAT('%', LOWER(?), '%')`
const cityLikeClause = ` AND LOWER(location_city) LIKE CONCAT('%', LOWER(?), '%')`

const byAccessibilitySQL = `
SELECT ` + selectCols + `
FROM accommodations
WHERE is_available = TRUE AND accessibility = ?
ORDER BY created_at DESC, id DESC
`

const petFriendlySQL = `
SELECT ` + selectCols + `
FROM accommodations
WHERE is_available = TRUE AND pets_allowed = TRUE
ORDER BY created_at DESC, id DESC
`

const setAvailabilitySQL = `
UPDATE accommodations
SET is_available = ?, updated_at = ?
WHERE id = ?
`

const deleteSQL = `
DELETE FROM accommodations
WHERE id = ?
`
