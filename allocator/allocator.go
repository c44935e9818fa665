// Package allocator splits participants into groups of balanced total score.
//
// A draw runs four phases: a stratified sort, a serpentine seeding of the
// strongest 2*groupCount participants, a randomized greedy fill of the rest
// and a bounded local search that swaps members between the heaviest and the
// lightest group. The allocator performs no I/O and keeps no state between
// calls apart from its random source.
package allocator

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"team-draft/contract"
	"team-draft/domain"
	"team-draft/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultMaxAttempts      = 100
	DefaultBalanceTolerance = 2
)

type Allocator struct {
	log              *slog.Logger
	random           contract.IRandomSource
	maxAttempts      int
	balanceTolerance int
	now              func() time.Time
}

var _ contract.IAllocator = (*Allocator)(nil)

type Option func(a *Allocator)

// WithMaxAttempts bounds the number of refinement swaps.
func WithMaxAttempts(n int) Option {
	return func(a *Allocator) {
		a.maxAttempts = n
	}
}

// WithBalanceTolerance sets the spread (max - min) considered balanced enough.
func WithBalanceTolerance(n int) Option {
	return func(a *Allocator) {
		a.balanceTolerance = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Allocator) {
		a.now = now
	}
}

func NewAllocator(log *slog.Logger, random contract.IRandomSource, opts ...Option) *Allocator {
	a := &Allocator{
		log:              log,
		random:           random,
		maxAttempts:      DefaultMaxAttempts,
		balanceTolerance: DefaultBalanceTolerance,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate partitions the participants into groupCount groups.
// It only checks that there are at least groupCount*groupSize participants;
// every participant is placed, so groups may end up larger than groupSize or uneven.
func (a *Allocator) Allocate(participants []domain.Participant, groupCount, groupSize int) (domain.AllocationResult, error) {
	if groupCount < 1 {
		return domain.AllocationResult{}, fmt.Errorf("%w, got %d", errors.ErrInvalidGroupCount, groupCount)
	}
	// groupCount*groupSize > len(participants), without overflowing the product
	if groupSize > 0 && groupCount > len(participants)/groupSize {
		need := fmt.Sprintf("more than %d", math.MaxInt)
		if groupCount <= math.MaxInt/groupSize {
			need = strconv.Itoa(groupCount * groupSize)
		}
		return domain.AllocationResult{}, fmt.Errorf("%w: %d groups of %d need %s participants, got %d",
			errors.ErrInsufficientParticipants, groupCount, groupSize, need, len(participants))
	}

	groups := make([][]domain.Participant, groupCount)
	sorted := Stratify(participants)

	seeds := sorted[:min(groupCount*2, len(sorted))]
	for i, target := range SerpentineOrder(len(seeds), groupCount) {
		groups[target] = append(groups[target], seeds[i])
	}

	rest := Shuffle(a.random, sorted[len(seeds):])
	fill(a.random, groups, rest)
	a.log.Debug("Groups seeded and filled",
		"seeds", len(seeds), "filled", len(rest), "scores", groupScores(groups))

	spreads := refine(groups, a.maxAttempts, a.balanceTolerance)
	scores := groupScores(groups)
	stats := ComputeStats(scores)
	a.log.Debug("Groups refined",
		"attempts", len(spreads), "spread_before", lo.FirstOr(spreads, 0), "spread_after", stats.Difference)

	return domain.AllocationResult{
		ID: uuid.New(),
		Groups: lo.Map(groups, func(members []domain.Participant, index int) domain.Group {
			return domain.NewGroup(index, members)
		}),
		GroupScores: scores,
		Stats:       stats,
		CreatedAt:   a.now().UTC(),
	}, nil
}
