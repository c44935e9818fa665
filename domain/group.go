package domain

import "github.com/samber/lo"

type GroupIndex int

// Group keeps its members in insertion order.
type Group struct {
	Index   GroupIndex
	Members []Participant
}

func NewGroup(index int, members []Participant) Group {
	return Group{
		Index:   GroupIndex(index),
		Members: members,
	}
}

// Score is the sum of the member scores.
func (g Group) Score() int {
	return lo.SumBy(g.Members, func(p Participant) int {
		return p.Score
	})
}

func (g Group) Count(category Category) int {
	return lo.CountBy(g.Members, func(p Participant) bool {
		return p.Category == category
	})
}

// Number is the 1-based label shown to people.
func (g Group) Number() int {
	return int(g.Index) + 1
}
