//go:generate go run go.uber.org/mock/mockgen -source=draft_service.go -destination=../mocks/mock_draft_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"team-draft/contract"
	"team-draft/domain"
	"team-draft/errors"
	"team-draft/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type IDraftService interface {
	Draft(cmd domain.DraftCommand) (domain.AllocationResult, error)
	Last() (domain.AllocationResult, error)
	History(limit int) ([]domain.AllocationResult, error)
	Clear() error
}

// DraftService sits between raw roster input and the allocator.
// It drops blank rows, validates the rest, assigns identities and
// records every successful draw in the session history.
type DraftService struct {
	log        *slog.Logger
	allocator  contract.IAllocator
	repository repositories.IDraftRepository
	validate   *validator.Validate
}

var _ IDraftService = (*DraftService)(nil)

func NewDraftService(
	log *slog.Logger,
	allocator contract.IAllocator,
	repository repositories.IDraftRepository,
	minScore, maxScore int,
) (*DraftService, error) {
	validate, err := newDraftValidator(minScore, maxScore)
	if err != nil {
		return nil, err
	}
	return &DraftService{
		log:        log,
		allocator:  allocator,
		repository: repository,
		validate:   validate,
	}, nil
}

// Draft runs one allocation. On failure the session history is left untouched.
func (s *DraftService) Draft(cmd domain.DraftCommand) (domain.AllocationResult, error) {
	players := keepFilledRows(cmd.Players)
	if dropped := len(cmd.Players) - len(players); dropped > 0 {
		s.log.Debug("Blank roster rows ignored", "count", dropped)
	}
	cmd.Players = players

	if err := s.validate.Struct(cmd); err != nil {
		return domain.AllocationResult{}, fmt.Errorf("%w: %w", errors.ErrInvalidDraft, err)
	}

	participants := lo.Map(cmd.Players, func(p domain.PlayerEntry, _ int) domain.Participant {
		return domain.NewParticipant(strings.TrimSpace(p.Name), p.Score, p.Category)
	})

	result, err := s.allocator.Allocate(participants, cmd.GroupCount, cmd.GroupSize)
	if err != nil {
		s.log.Warn("Draft rejected", "participants", len(participants),
			"groups", cmd.GroupCount, "size", cmd.GroupSize, "error", err)
		return domain.AllocationResult{}, fmt.Errorf("draft failed: %w", err)
	}

	if err = s.repository.Store(result); err != nil {
		return domain.AllocationResult{}, fmt.Errorf("storing draft %s: %w", result.ID, err)
	}

	s.log.Info("Draft completed",
		"id", result.ID,
		"participants", len(participants),
		"groups", len(result.Groups),
		"average", result.Stats.Average,
		"difference", result.Stats.Difference,
		"std_dev", result.Stats.StandardDeviation,
	)
	return result, nil
}

func (s *DraftService) Last() (domain.AllocationResult, error) {
	return s.repository.Last()
}

func (s *DraftService) History(limit int) ([]domain.AllocationResult, error) {
	return s.repository.List(limit)
}

func (s *DraftService) Clear() error {
	if err := s.repository.Clear(); err != nil {
		return fmt.Errorf("clearing drafts: %w", err)
	}
	s.log.Info("Draft history cleared")
	return nil
}

// keepFilledRows drops rows without a name or without a score.
func keepFilledRows(players []domain.PlayerEntry) []domain.PlayerEntry {
	return lo.Filter(players, func(p domain.PlayerEntry, _ int) bool {
		return strings.TrimSpace(p.Name) != "" && p.Score != 0
	})
}
