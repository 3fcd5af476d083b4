// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package moderation validates and spam-screens public blog comments.
// Validation rejects malformed submissions outright; the spam screen
// never rejects, it only decides whether a comment starts out approved
// or held for review.
package moderation

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxContentLen is the maximum comment length in characters.
const MaxContentLen = 1000

// spamTerms is the fixed denylist matched case-insensitively as
// substrings against comment content and author name.
var spamTerms = []string{
	"viagra",
	"cialis",
	"casino",
	"lottery",
	"jackpot",
	"free money",
	"make money fast",
	"work from home",
	"click here",
	"buy now",
	"limited offer",
	"crypto giveaway",
	"forex",
	"payday loan",
}

// Submission carries the fields of an incoming comment relevant to
// validation and screening.
type Submission struct {
	Author  string
	Email   string
	Content string
}

// Validate checks a submission and returns a human-readable message for
// the first violated rule, or "" when the submission is acceptable.
func Validate(s Submission) string {
	if strings.TrimSpace(s.Author) == "" {
		return "Name is required."
	}
	if strings.TrimSpace(s.Email) == "" {
		return "Email is required."
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return "Email address is not valid."
	}
	if strings.TrimSpace(s.Content) == "" {
		return "Comment content is required."
	}
	if utf8.RuneCountInString(s.Content) > MaxContentLen {
		return "Comment is too long (max 1,000 characters)."
	}
	return ""
}

// IsSpam reports whether the comment content or author name contains any
// denylisted term, case-insensitively.
func IsSpam(s Submission) bool {
	content := strings.ToLower(s.Content)
	author := strings.ToLower(s.Author)
	for _, term := range spamTerms {
		if strings.Contains(content, term) || strings.Contains(author, term) {
			return true
		}
	}
	return false
}
