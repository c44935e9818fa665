//go:generate go run go.uber.org/mock/mockgen -source=draft.go -destination=../mocks/mock_draft_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"team-draft/domain"
	"team-draft/errors"
	pb "team-draft/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

const draftPrefix = "draft:"

type IDraftRepository interface {
	Store(result domain.AllocationResult) error
	Last() (domain.AllocationResult, error)
	List(limit int) ([]domain.AllocationResult, error)
	Clear() error
}

// DraftRepository keeps the draws of the current session.
type DraftRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDraftRepository(db *badger.DB, log *slog.Logger) DraftRepository {
	return DraftRepository{db: db, log: log}
}

// OpenSessionStore opens a memory-only badger instance: nothing outlives the process.
func OpenSessionStore() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
}

// Store persists a draw for the session.
// The key is formatted as "draft:{timestamp_padded}:{uuid}" so that a reverse
// prefix scan yields the newest draw first; the uuid separates draws made
// within the same nanosecond.
func (r DraftRepository) Store(result domain.AllocationResult) error {
	key := fmt.Sprintf("%s%019d:%s", draftPrefix, result.CreatedAt.UnixNano(), result.ID)
	bytes, err := proto.Marshal(fromDraft(result))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (r DraftRepository) Last() (domain.AllocationResult, error) {
	drafts, err := r.List(1)
	if err != nil {
		return domain.AllocationResult{}, err
	}
	if len(drafts) == 0 {
		return domain.AllocationResult{}, errors.ErrNoDraft
	}
	return drafts[0], nil
}

// List returns at most limit draws, newest first. A limit <= 0 returns them all.
func (r DraftRepository) List(limit int) ([]domain.AllocationResult, error) {
	var drafts []domain.AllocationResult
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(draftPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration seeks to the greatest key <= seek, past every timestamp
		seek := append([]byte(draftPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(drafts) >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var draftPb pb.Draft
				if err := proto.Unmarshal(val, &draftPb); err != nil {
					return err
				}
				draft, err := toDraft(&draftPb)
				if err != nil {
					return err
				}
				drafts = append(drafts, draft)
				return nil
			})
			if err != nil {
				r.log.Warn("Skipping unreadable draft", "key", string(it.Item().Key()), "error", err)
			}
		}
		return nil
	})
	return drafts, err
}

// Clear deletes every draw of the session.
func (r DraftRepository) Clear() error {
	return r.db.Update(func(txn *badger.Txn) error {
		keys := draftKeys(txn)
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		r.log.Debug("Session drafts cleared", "count", len(keys))
		return nil
	})
}

func draftKeys(txn *badger.Txn) [][]byte {
	prefix := []byte(draftPrefix)
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}

func fromDraft(result domain.AllocationResult) *pb.Draft {
	return &pb.Draft{
		Id: result.ID.String(),
		Groups: lo.Map(result.Groups, func(g domain.Group, _ int) *pb.Group {
			return &pb.Group{Members: lo.Map(g.Members, func(p domain.Participant, _ int) *pb.Participant {
				return &pb.Participant{Id: p.ID.String(), Name: p.Name, Score: int32(p.Score), Category: string(p.Category)}
			})}
		}),
		GroupScores:       lo.Map(result.GroupScores, func(score int, _ int) int32 { return int32(score) }),
		Average:           result.Stats.Average,
		Max:               int32(result.Stats.Max),
		Min:               int32(result.Stats.Min),
		Difference:        int32(result.Stats.Difference),
		StandardDeviation: result.Stats.StandardDeviation,
		CreatedAtUnixNano: result.CreatedAt.UnixNano(),
	}
}

func toDraft(draftPb *pb.Draft) (domain.AllocationResult, error) {
	parsedID, err := uuid.Parse(draftPb.Id)
	if err != nil {
		return domain.AllocationResult{}, err
	}
	groups := make([]domain.Group, 0, len(draftPb.Groups))
	for index, g := range draftPb.Groups {
		members := make([]domain.Participant, 0, len(g.Members))
		for _, p := range g.Members {
			memberID, err := uuid.Parse(p.Id)
			if err != nil {
				return domain.AllocationResult{}, err
			}
			members = append(members, domain.Participant{ID: memberID, Name: p.Name, Score: int(p.Score), Category: domain.Category(p.Category)})
		}
		groups = append(groups, domain.NewGroup(index, members))
	}
	return domain.AllocationResult{
		ID:          parsedID,
		Groups:      groups,
		GroupScores: lo.Map(draftPb.GroupScores, func(score int32, _ int) int { return int(score) }),
		Stats: domain.BalanceStats{
			Average:           draftPb.Average,
			Max:               int(draftPb.Max),
			Min:               int(draftPb.Min),
			Difference:        int(draftPb.Difference),
			StandardDeviation: draftPb.StandardDeviation,
		},
		CreatedAt: time.Unix(0, draftPb.CreatedAtUnixNano).UTC(),
	}, nil
}
