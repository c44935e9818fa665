package allocator

import (
	"math"
	"team-draft/domain"

	"github.com/samber/lo"
)

// ComputeStats summarises the group totals. The standard deviation is the population one.
func ComputeStats(scores []int) domain.BalanceStats {
	if len(scores) == 0 {
		return domain.BalanceStats{}
	}

	count := float64(len(scores))
	average := float64(lo.Sum(scores)) / count
	variance := lo.SumBy(scores, func(score int) float64 {
		delta := float64(score) - average
		return delta * delta
	}) / count

	highest, lowest := lo.Max(scores), lo.Min(scores)
	return domain.BalanceStats{
		Average:           average,
		Max:               highest,
		Min:               lowest,
		Difference:        highest - lowest,
		StandardDeviation: math.Sqrt(variance),
	}
}
