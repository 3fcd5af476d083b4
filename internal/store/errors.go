// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique constraint
// violations. Concurrent creates with the same derived slug both pass any
// application-level check; the loser surfaces here and handlers map it to
// a 409 instead of a 500.
const uniqueViolationCode = "23505"

// foreignKeyViolationCode is the SQLSTATE for foreign key violations,
// raised when deleting a row that other rows still reference.
const foreignKeyViolationCode = "23503"

// ErrSeriesHasPosts is returned when deleting a series that still has
// member posts.
var ErrSeriesHasPosts = errors.New("series still has member posts")

// ErrSkillNotFound is returned when a recomputed score names a skill that
// has no progression row in the program.
var ErrSkillNotFound = errors.New("no progression for skill name")

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (duplicate slug, key, or email).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation (deleting a category that posts still reference).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// jsonList marshals a string slice for storage in a jsonb column.
// A nil slice is stored as an empty JSON array, never SQL NULL.
func jsonList(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return b
}

// scanList unmarshals a jsonb column back into a string slice.
func scanList(b []byte) []string {
	if len(b) == 0 {
		return []string{}
	}
	var v []string
	if err := json.Unmarshal(b, &v); err != nil {
		return []string{}
	}
	return v
}
