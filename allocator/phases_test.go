package allocator

import (
	"testing"
	"team-draft/domain"
	"team-draft/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scored(scores ...int) []domain.Participant {
	return lo.Map(scores, func(score int, _ int) domain.Participant {
		return domain.NewParticipant("", score, domain.CategoryA)
	})
}

func scoresOf(participants []domain.Participant) []int {
	return lo.Map(participants, func(p domain.Participant, _ int) int {
		return p.Score
	})
}

func TestStratify_CategoryThenDescendingScore(t *testing.T) {
	req := require.New(t)
	low := domain.NewParticipant("low", 5, domain.CategoryB)
	high := domain.NewParticipant("high", 9, domain.CategoryA)

	sorted := Stratify([]domain.Participant{low, high})

	req.Equal([]domain.Participant{high, low}, sorted)
}

func TestStratify_StableAndNonMutating(t *testing.T) {
	req := require.New(t)
	b7 := domain.NewParticipant("b7", 7, domain.CategoryB)
	a3 := domain.NewParticipant("a3", 3, domain.CategoryA)
	a8first := domain.NewParticipant("a8-first", 8, domain.CategoryA)
	a8second := domain.NewParticipant("a8-second", 8, domain.CategoryA)
	b9 := domain.NewParticipant("b9", 9, domain.CategoryB)
	input := []domain.Participant{b7, a3, a8first, a8second, b9}
	original := append([]domain.Participant(nil), input...)

	sorted := Stratify(input)

	req.Equal([]domain.Participant{a8first, a8second, a3, b9, b7}, sorted)
	req.Equal(original, input)
}

func TestSerpentineOrder(t *testing.T) {
	tests := []struct {
		description string
		seeds       int
		groupCount  int
		expected    []int
	}{
		{"Four groups turn on both boundaries without repeating them", 8, 4, []int{0, 1, 2, 3, 2, 1, 0, 1}},
		{"Three groups", 6, 3, []int{0, 1, 2, 1, 0, 1}},
		{"Two groups alternate", 4, 2, []int{0, 1, 0, 1}},
		{"A single group receives every seed", 2, 1, []int{0, 0}},
		{"No seeds", 0, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.expected, SerpentineOrder(tt.seeds, tt.groupCount))
		})
	}
}

func TestShuffle_ReproducibleFisherYates(t *testing.T) {
	req := require.New(t)
	p1 := domain.NewParticipant("p1", 1, domain.CategoryA)
	p2 := domain.NewParticipant("p2", 2, domain.CategoryA)
	p3 := domain.NewParticipant("p3", 3, domain.CategoryA)
	input := []domain.Participant{p1, p2, p3}
	samples := []float64{0.1, 0.9}

	// i=2 swaps with floor(0.1*3)=0, i=1 swaps with floor(0.9*2)=1
	first := Shuffle(&sequenceSource{values: samples}, input)
	second := Shuffle(&sequenceSource{values: samples}, input)

	req.Equal([]domain.Participant{p3, p2, p1}, first)
	req.Equal(first, second)
	req.ElementsMatch(input, first)
	req.Equal([]domain.Participant{p1, p2, p3}, input)
}

func TestShuffle_ConsumesOneSamplePerSwap(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	random := mocks.NewMockIRandomSource(ctrl)

	// Given 4 participants, Fisher-Yates draws for i=3,2,1
	random.EXPECT().Float64().Return(0.0).Times(3)

	shuffled := Shuffle(random, scored(1, 2, 3, 4))

	// i=3 <-> 0, i=2 <-> 0, i=1 <-> 0
	req.Equal([]int{2, 3, 4, 1}, scoresOf(shuffled))
}

func TestNewRandomSource_IndependentSeeds(t *testing.T) {
	req := require.New(t)
	first, second := NewRandomSource(), NewRandomSource()

	a := lo.Times(4, func(_ int) float64 { return first.Float64() })
	b := lo.Times(4, func(_ int) float64 { return second.Float64() })

	req.NotEqual(a, b)
	for _, sample := range append(a, b...) {
		req.GreaterOrEqual(sample, 0.0)
		req.Less(sample, 1.0)
	}
}

func TestShuffle_ClampsOutOfRangeSamples(t *testing.T) {
	req := require.New(t)
	shuffled := Shuffle(&sequenceSource{values: []float64{1.0, -0.5}}, scored(1, 2, 3))
	req.ElementsMatch([]int{1, 2, 3}, scoresOf(shuffled))
}

func TestFill_LowestGroupWins(t *testing.T) {
	req := require.New(t)
	groups := [][]domain.Participant{scored(9), scored(4), scored(6)}

	fill(&sequenceSource{values: []float64{0}}, groups, scored(5))

	req.Equal([]int{9, 9, 6}, groupScores(groups))
}

func TestFill_TiesBrokenByRandomSource(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	random := mocks.NewMockIRandomSource(ctrl)

	// Given groups 1 and 2 tied at the lowest total
	groups := [][]domain.Participant{scored(5), scored(3), scored(3)}

	// When the source picks the second of the two tied groups
	random.EXPECT().Float64().Return(0.75).Times(1)
	fill(random, groups, scored(4))

	// Then group 2 receives the participant
	req.Equal([]int{5, 3, 7}, groupScores(groups))
}

func TestFill_RecomputesTotalsBeforeEachPlacement(t *testing.T) {
	req := require.New(t)
	groups := [][]domain.Participant{nil, nil}

	fill(&sequenceSource{values: []float64{0}}, groups, scored(10, 1, 1, 1))

	// 10 -> g0, then g1 stays lowest for every 1
	req.Equal([]int{10, 3}, groupScores(groups))
}

func TestRefine_LargestQualifyingSwapFirst(t *testing.T) {
	req := require.New(t)
	groups := [][]domain.Participant{scored(9, 6), scored(2, 1)}

	spreads := refine(groups, DefaultMaxAttempts, DefaultBalanceTolerance)

	// 15/3: swap 9<->1 (d=8 < 12), then 7/11: swap 9<->6 (d=3 < 4), then 10/8
	req.Equal([]int{12, 4, 2}, spreads)
	req.Equal([]int{1, 9}, scoresOf(groups[0]))
	req.Equal([]int{2, 6}, scoresOf(groups[1]))
}

func TestRefine_StopsWithoutQualifyingSwap(t *testing.T) {
	req := require.New(t)
	// 10-2 equals the spread of 8, every other pair is <= 0 or larger
	groups := [][]domain.Participant{scored(10, 1), scored(2, 1)}

	spreads := refine(groups, DefaultMaxAttempts, DefaultBalanceTolerance)

	req.Equal([]int{8}, spreads)
	req.Equal([]int{10, 1}, scoresOf(groups[0]))
}

func TestRefine_BoundedByMaxAttempts(t *testing.T) {
	req := require.New(t)
	groups := [][]domain.Participant{scored(9, 6), scored(2, 1)}

	spreads := refine(groups, 1, DefaultBalanceTolerance)

	req.Equal([]int{12}, spreads)
	req.Equal([]int{7, 11}, groupScores(groups))
}

func TestRefine_NeverWidensTheSpread(t *testing.T) {
	req := require.New(t)

	for seed := uint64(1); seed <= 200; seed++ {
		random := NewSeededSource(seed)
		participants := Stratify(randomRoster(seed, 20+int(seed%17)))
		groups := make([][]domain.Participant, 4)
		for i, target := range SerpentineOrder(8, 4) {
			groups[target] = append(groups[target], participants[i])
		}
		fill(random, groups, Shuffle(random, participants[8:]))

		spreads := refine(groups, DefaultMaxAttempts, DefaultBalanceTolerance)

		req.NotEmpty(spreads)
		req.LessOrEqual(len(spreads), DefaultMaxAttempts)
		for i := 1; i < len(spreads); i++ {
			req.LessOrEqual(spreads[i], spreads[i-1], "seed=%d attempt=%d", seed, i)
		}
		final := ComputeStats(groupScores(groups)).Difference
		req.LessOrEqual(final, spreads[len(spreads)-1])
		req.Len(lo.Flatten(groups), len(participants))
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		description string
		scores      []int
		expected    domain.BalanceStats
	}{
		{
			"Equal groups have no spread",
			[]int{10, 10, 10, 10},
			domain.BalanceStats{Average: 10, Max: 10, Min: 10, Difference: 0, StandardDeviation: 0},
		},
		{
			"Population standard deviation",
			[]int{2, 4, 4, 4, 5, 5, 7, 9},
			domain.BalanceStats{Average: 5, Max: 9, Min: 2, Difference: 7, StandardDeviation: 2},
		},
		{
			"No groups",
			nil,
			domain.BalanceStats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.expected, ComputeStats(tt.scores))
		})
	}
}
