// Package domain contains core concepts of the team draft.
// This file defines Participant entities and related invariants.
// No allocation, storage, or rendering logic should be added here.
package domain

import "github.com/google/uuid"

// Category splits participants into two strata that are sorted lexically.
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
)

// Participant is created once the input is parsed and is read-only afterwards.
type Participant struct {
	ID       uuid.UUID // unique identifier
	Name     string
	Score    int
	Category Category
}

func NewParticipant(name string, score int, category Category) Participant {
	return Participant{
		ID:       uuid.New(),
		Name:     name,
		Score:    score,
		Category: category,
	}
}
