package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// BalanceStats describes how evenly the group totals are spread.
type BalanceStats struct {
	Average           float64
	Max               int
	Min               int
	Difference        int
	StandardDeviation float64 // population
}

// AllocationResult is produced once per allocation and never mutated afterwards.
type AllocationResult struct {
	ID          uuid.UUID
	Groups      []Group
	GroupScores []int
	Stats       BalanceStats
	CreatedAt   time.Time
}

// Participants flattens the groups back into a single list, group by group.
func (r AllocationResult) Participants() []Participant {
	return lo.FlatMap(r.Groups, func(g Group, _ int) []Participant {
		return g.Members
	})
}

// GroupOf returns the group holding the participant, if any.
func (r AllocationResult) GroupOf(id uuid.UUID) (Group, bool) {
	return lo.Find(r.Groups, func(g Group) bool {
		return lo.ContainsBy(g.Members, func(p Participant) bool {
			return p.ID == id
		})
	})
}
