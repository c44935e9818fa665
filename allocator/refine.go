package allocator

import (
	"team-draft/domain"

	"github.com/samber/lo"
)

// refine swaps single members between the heaviest and the lightest group.
//
// Each attempt stops the loop when the spread (max - min) is within tolerance
// or when no swap strictly shrinks it. A qualifying swap moves d points with
// 0 < d < spread, so both touched totals stay strictly inside (min, max) and
// the spread never grows. The largest qualifying d wins.
//
// It returns the spread observed at the start of each attempt.
func refine(groups [][]domain.Participant, maxAttempts, tolerance int) []int {
	spreads := make([]int, 0, maxAttempts)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		scores := groupScores(groups)
		highest, lowest := lo.Max(scores), lo.Min(scores)
		spread := highest - lowest
		spreads = append(spreads, spread)
		if spread <= tolerance {
			break
		}

		heavy, light := lo.IndexOf(scores, highest), lo.IndexOf(scores, lowest)
		i, j, ok := bestSwap(groups[heavy], groups[light], spread)
		if !ok {
			break
		}
		groups[heavy][i], groups[light][j] = groups[light][j], groups[heavy][i]
	}
	return spreads
}

func bestSwap(heavy, light []domain.Participant, spread int) (int, int, bool) {
	bestI, bestJ, best := -1, -1, 0
	for i, a := range heavy {
		for j, b := range light {
			diff := a.Score - b.Score
			if diff > 0 && diff < spread && diff > best {
				bestI, bestJ, best = i, j, diff
			}
		}
	}
	return bestI, bestJ, best > 0
}
