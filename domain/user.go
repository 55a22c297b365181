// Package domain contains core concepts of the onboarding system.
// This file defines the student profile and the matching key derived from it.
// No storage, network, or UI logic should be added here.
package domain

import "time"

// UserProfile is a registered student. University and Branch are always stored normalized.
type UserProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	University     string    `json:"university"`
	Branch         string    `json:"branch"`
	IsNewAdmission bool      `json:"isNewAdmission"`
	JoinedAt       time.Time `json:"joinedAt"`
}

// Registration is what a student submits during onboarding, before an id is assigned.
type Registration struct {
	Name           string `json:"name"`
	University     string `json:"university"`
	Branch         string `json:"branch"`
	IsNewAdmission bool   `json:"isNewAdmission"`
}

// MatchingKey buckets students and groups together.
type MatchingKey struct {
	University string
	Branch     string
}

func (u UserProfile) Key() MatchingKey {
	return MatchingKey{University: u.University, Branch: u.Branch}
}
