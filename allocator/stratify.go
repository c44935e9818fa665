package allocator

import (
	"cmp"
	"slices"
	"strings"
	"team-draft/domain"
)

// Stratify orders participants by category (lexically), then by descending score.
// The sort is stable: participants with equal keys keep their input order.
// The input slice is left untouched.
func Stratify(participants []domain.Participant) []domain.Participant {
	sorted := slices.Clone(participants)
	slices.SortStableFunc(sorted, func(a, b domain.Participant) int {
		if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		return cmp.Compare(b.Score, a.Score)
	})
	return sorted
}
