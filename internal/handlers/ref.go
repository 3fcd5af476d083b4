// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"github.com/google/uuid"
)

// ParseRef classifies a URL path segment as either an opaque ID or a
// slug. Only the canonical 36-character hyphenated UUID form counts as an
// ID; everything else falls through to slug lookup. This keeps slugs like
// "2024-review" from being misread even though they contain hex digits.
func ParseRef(segment string) (uuid.UUID, bool) {
	if len(segment) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(segment)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
