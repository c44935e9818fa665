package e2e

import (
	"encoding/json"
	"fmt"
	"sync"
	"team-draft/allocator"
	"team-draft/contract"
	"team-draft/domain"
	"team-draft/repositories"
	"team-draft/services"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseDraftSuite wires the real allocator, service and session store.
type BaseDraftSuite struct {
	suite.Suite
	Config  Config
	db      *badger.DB
	Service *services.DraftService
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseDraftSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest gives every scenario a fresh session.
func (s *BaseDraftSuite) SetupTest() {
	var err error
	s.db, err = repositories.OpenSessionStore()
	s.Require().NoError(err)

	var random contract.IRandomSource = allocator.NewRandomSource()
	if s.Config.Seed != 0 {
		random = allocator.NewSeededSource(s.Config.Seed)
	}
	log := logs.GetLoggerFromString("DEBUG")
	s.Service, err = services.NewDraftService(log,
		allocator.NewAllocator(log, random, allocator.WithClock(tickingClock(time.Now().UTC()))),
		repositories.NewDraftRepository(s.db, log), 1, 10)
	s.Require().NoError(err)
}

// tickingClock moves one millisecond forward on every call so draws
// of the same scenario never share a creation time.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Millisecond)
		return current
	}
}

func (s *BaseDraftSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

// Step prints a colorized header and runs fn as a named sub-test.
func (s *BaseDraftSuite) Step(name string, fn func()) {
	s.Run(name, func() {
		header := fmt.Sprintf("  ====== %s ======", name)
		if s.Config.Colours {
			header = color.New(color.BgBlack, color.FgGreen).Render(header)
		}
		s.T().Log(header)
		fn()
	})
}

// Dump logs the result as JSON when E2E_DEBUG_JSON is enabled.
func (s *BaseDraftSuite) Dump(result domain.AllocationResult) {
	if !s.Config.DebugJSON {
		return
	}
	bytes, err := json.MarshalIndent(result, "", "  ")
	s.Require().NoError(err)
	s.T().Log("\nRESULT:\n" + string(bytes))
}
