package allocator

import (
	"slices"
	"team-draft/contract"
	"team-draft/domain"

	"github.com/samber/lo"
)

// Shuffle returns a Fisher-Yates permutation of the participants.
// For i from the last index down to 1, element i is swapped with a uniformly chosen index in [0,i].
func Shuffle(random contract.IRandomSource, participants []domain.Participant) []domain.Participant {
	shuffled := slices.Clone(participants)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := pick(random, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// fill hands every participant to the group with the lowest running total.
// Totals are recomputed before each placement; ties are broken uniformly at random.
func fill(random contract.IRandomSource, groups [][]domain.Participant, participants []domain.Participant) {
	for _, p := range participants {
		scores := groupScores(groups)
		lowest := lo.Min(scores)
		tied := lo.FilterMap(scores, func(score int, index int) (int, bool) {
			return index, score == lowest
		})
		target := tied[pick(random, len(tied))]
		groups[target] = append(groups[target], p)
	}
}

func groupScores(groups [][]domain.Participant) []int {
	return lo.Map(groups, func(members []domain.Participant, _ int) int {
		return lo.SumBy(members, func(p domain.Participant) int {
			return p.Score
		})
	})
}
