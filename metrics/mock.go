package metrics

import (
	"sync"
	"time"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	requests        int
	unitsOfWork     map[string]int
	eventsPublished map[string]int
	exports         map[bool]int
}

func NewMock() *Mock {
	return &Mock{
		unitsOfWork:     make(map[string]int),
		eventsPublished: make(map[string]int),
		exports:         make(map[bool]int),
	}
}

func (m *Mock) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *Mock) ObserveUnitOfWork(operation string, committed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unitsOfWork[unitKey(operation, committed)]++
}

func (m *Mock) IncEventsPublished(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished[eventType]++
}

func (m *Mock) IncSnapshotExports(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exports[success]++
}

func (m *Mock) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// UnitsOfWork returns how often operation ended committed (or rolled back).
func (m *Mock) UnitsOfWork(operation string, committed bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unitsOfWork[unitKey(operation, committed)]
}

func (m *Mock) EventsPublished(eventType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished[eventType]
}

func (m *Mock) SnapshotExports(success bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exports[success]
}

func unitKey(operation string, committed bool) string {
	if committed {
		return operation + "/committed"
	}
	return operation + "/rolled_back"
}

// Discard records nothing.
var Discard Metrics = discard{}

type discard struct{}

func (discard) ObserveRequest(string, string, int, time.Duration) {}
func (discard) ObserveUnitOfWork(string, bool)                    {}
func (discard) IncEventsPublished(string)                         {}
func (discard) IncSnapshotExports(bool)                           {}
