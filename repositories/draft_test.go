package repositories

import (
	"fmt"
	"log/slog"
	"team-draft/domain"
	"team-draft/errors"
	pb "team-draft/proto/storage"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func newDraft(at time.Time, difference int) domain.AllocationResult {
	alice := domain.NewParticipant("Alice", 7, domain.CategoryA)
	bob := domain.NewParticipant("Bob", 4, domain.CategoryB)
	clara := domain.NewParticipant("Clara", 5, domain.CategoryA)
	return domain.AllocationResult{
		ID: uuid.New(),
		Groups: []domain.Group{
			domain.NewGroup(0, []domain.Participant{alice}),
			domain.NewGroup(1, []domain.Participant{bob, clara}),
		},
		GroupScores: []int{7, 9},
		Stats:       domain.BalanceStats{Average: 8, Max: 9, Min: 7, Difference: difference, StandardDeviation: 1},
		CreatedAt:   at,
	}
}

func openStore(t *testing.T) *badger.DB {
	db, err := OpenSessionStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_Read_Back_Draft(t *testing.T) {
	req := require.New(t)
	repository := NewDraftRepository(openStore(t), slog.Default())
	draft := newDraft(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), 2)

	req.NoError(repository.Store(draft))

	last, err := repository.Last()
	req.NoError(err)
	req.Equal(draft.ID, last.ID)
	req.Equal(draft.Groups, last.Groups)
	req.Equal(draft.GroupScores, last.GroupScores)
	req.Equal(draft.Stats, last.Stats)
	req.True(draft.CreatedAt.Equal(last.CreatedAt))
}

func Test_List_Newest_First_With_Limit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"All draws when no limit", 0, []int{3, 2, 1}},
		{"Negative limit means all", -1, []int{3, 2, 1}},
		{"Limited to the two newest", 2, []int{3, 2}},
		{"Limit above the count", 10, []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			repository := NewDraftRepository(openStore(t), slog.Default())
			at := time.Now().UTC()

			// Given three draws stored out of order
			req.NoError(repository.Store(newDraft(at.Add(time.Minute), 2)))
			req.NoError(repository.Store(newDraft(at, 1)))
			req.NoError(repository.Store(newDraft(at.Add(2*time.Minute), 3)))

			// When listing
			drafts, err := repository.List(tt.limit)
			req.NoError(err)

			// Then they come back by creation time, newest first
			differences := make([]int, 0, len(drafts))
			for _, d := range drafts {
				differences = append(differences, d.Stats.Difference)
			}
			req.Equal(tt.expected, differences)
		})
	}
}

func Test_Draws_At_The_Same_Instant_Are_Kept(t *testing.T) {
	req := require.New(t)
	repository := NewDraftRepository(openStore(t), slog.Default())
	at := time.Now().UTC()

	req.NoError(repository.Store(newDraft(at, 1)))
	req.NoError(repository.Store(newDraft(at, 2)))

	drafts, err := repository.List(0)
	req.NoError(err)
	req.Len(drafts, 2)
}

func Test_Last_Without_Draft(t *testing.T) {
	req := require.New(t)
	repository := NewDraftRepository(openStore(t), slog.Default())

	_, err := repository.Last()
	req.ErrorIs(err, errors.ErrNoDraft)
}

func Test_Clear_Removes_Every_Draft(t *testing.T) {
	req := require.New(t)
	db := openStore(t)
	repository := NewDraftRepository(db, slog.Default())
	at := time.Now().UTC()
	for i := range 5 {
		req.NoError(repository.Store(newDraft(at.Add(time.Duration(i)*time.Second), i)))
	}
	// A foreign key must survive the clear
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("other:key"), []byte("value"))
	}))

	req.NoError(repository.Clear())

	drafts, err := repository.List(0)
	req.NoError(err)
	req.Empty(drafts)
	_, err = repository.Last()
	req.ErrorIs(err, errors.ErrNoDraft)
	req.NoError(db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("other:key"))
		return err
	}))
}

func Test_Unreadable_Draft_Is_Skipped(t *testing.T) {
	req := require.New(t)
	db := openStore(t)
	repository := NewDraftRepository(db, slog.Default())
	at := time.Now().UTC()
	req.NoError(repository.Store(newDraft(at, 1)))
	req.NoError(db.Update(func(txn *badger.Txn) error {
		// Length-delimited field whose length varint is cut short
		return txn.Set([]byte("draft:9999999999999999999:broken"), []byte{0x0a, 0xff})
	}))

	drafts, err := repository.List(0)
	req.NoError(err)
	req.Len(drafts, 1)
	req.Equal(1, drafts[0].Stats.Difference)
}

func Test_Draft_With_Invalid_ID_Is_Skipped(t *testing.T) {
	req := require.New(t)
	db := openStore(t)
	repository := NewDraftRepository(db, slog.Default())
	req.NoError(repository.Store(newDraft(time.Now().UTC(), 1)))

	// Given a well-formed record whose id is not a uuid
	bytes, err := proto.Marshal(&pb.Draft{Id: "not-a-uuid", CreatedAtUnixNano: 1})
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("draft:9999999999999999999:invalid"), bytes)
	}))

	drafts, err := repository.List(0)
	req.NoError(err)
	req.Len(drafts, 1)
}

func Test_Draft_Is_Stored_As_Protobuf(t *testing.T) {
	req := require.New(t)
	db := openStore(t)
	repository := NewDraftRepository(db, slog.Default())
	at := time.Date(2025, 6, 1, 18, 0, 0, 42, time.UTC)
	draft := newDraft(at, 2)
	req.NoError(repository.Store(draft))

	// When reading the raw value back
	var draftPb pb.Draft
	req.NoError(db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf("draft:%019d:%s", at.UnixNano(), draft.ID)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &draftPb)
		})
	}))

	// Then it decodes as a storage.Draft message
	req.Equal(draft.ID.String(), draftPb.GetId())
	req.Len(draftPb.GetGroups(), 2)
	req.Len(draftPb.GetGroups()[1].GetMembers(), 2)
	req.Equal("Bob", draftPb.GetGroups()[1].GetMembers()[0].GetName())
	req.Equal([]int32{7, 9}, draftPb.GetGroupScores())
	req.Equal(int32(2), draftPb.GetDifference())
	req.Equal(at.UnixNano(), draftPb.GetCreatedAtUnixNano())
}
