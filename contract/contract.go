//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "team-draft/domain"

// IRandomSource yields uniformly distributed values in [0,1).
// Allocation only ever reads randomness through it, so tests can replay a fixed sequence.
type IRandomSource interface {
	Float64() float64
}

type IAllocator interface {
	Allocate(participants []domain.Participant, groupCount, groupSize int) (domain.AllocationResult, error)
}
