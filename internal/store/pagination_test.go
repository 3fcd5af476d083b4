// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "testing"

func TestNewPageParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
	}{
		{"defaults", 0, 0, 1, DefaultPageLimit},
		{"negative", -3, -10, 1, DefaultPageLimit},
		{"in range", 4, 25, 4, 25},
		{"over cap", 1, 5000, 1, MaxPageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageParams(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", p.Page, p.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	if got := NewPageParams(1, 10).Offset(); got != 0 {
		t.Errorf("page 1 offset: got %d", got)
	}
	if got := NewPageParams(3, 20).Offset(); got != 40 {
		t.Errorf("page 3 offset: got %d", got)
	}
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(NewPageParams(2, 10), 35)
	if meta.TotalPages != 4 {
		t.Errorf("total pages: got %d", meta.TotalPages)
	}
	if !meta.HasNextPage || !meta.HasPreviousPage {
		t.Errorf("middle page flags: %+v", meta)
	}

	last := NewPageMeta(NewPageParams(4, 10), 35)
	if last.HasNextPage {
		t.Error("last page must not have next")
	}

	empty := NewPageMeta(NewPageParams(1, 10), 0)
	if empty.TotalPages != 0 || empty.HasNextPage || empty.HasPreviousPage {
		t.Errorf("empty result: %+v", empty)
	}
}
