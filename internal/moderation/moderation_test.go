// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package moderation

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	ok := Submission{Author: "Ana", Email: "ana@example.com", Content: "Nice write-up, thanks."}

	tests := []struct {
		name string
		sub  Submission
		want string
	}{
		{"valid", ok, ""},
		{"empty author", Submission{Email: ok.Email, Content: ok.Content}, "Name is required."},
		{"whitespace author", Submission{Author: "   ", Email: ok.Email, Content: ok.Content}, "Name is required."},
		{"empty email", Submission{Author: ok.Author, Content: ok.Content}, "Email is required."},
		{"malformed email", Submission{Author: ok.Author, Email: "not-an-address", Content: ok.Content}, "Email address is not valid."},
		{"empty content", Submission{Author: ok.Author, Email: ok.Email}, "Comment content is required."},
		{"too long", Submission{Author: ok.Author, Email: ok.Email, Content: strings.Repeat("x", MaxContentLen+1)}, "Comment is too long (max 1,000 characters)."},
		{"exactly max", Submission{Author: ok.Author, Email: ok.Email, Content: strings.Repeat("x", MaxContentLen)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.sub); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	sub := Submission{
		Author:  "Ana",
		Email:   "ana@example.com",
		Content: strings.Repeat("é", MaxContentLen),
	}
	if got := Validate(sub); got != "" {
		t.Errorf("multibyte content at the limit should pass, got %q", got)
	}
}

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want bool
	}{
		{"clean", Submission{Author: "Ana", Content: "Great post about goroutines."}, false},
		{"term in content", Submission{Author: "Ana", Content: "CLICK HERE for deals"}, true},
		{"term in author", Submission{Author: "Casino Royale", Content: "hello"}, true},
		{"substring match", Submission{Author: "Ana", Content: "megajackpotwinner"}, true},
		{"mixed case", Submission{Author: "Ana", Content: "Free MONEY today"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpam(tt.sub); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
