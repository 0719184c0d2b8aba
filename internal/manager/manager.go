package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/pkg/types"
)

type Manager struct {
	mu        sync.RWMutex
	state     State
	err       string
	loadErrs  map[bodyfat.Variant]string
	registry  []types.Model
	cache     *Cache
	startTime time.Time

	loadsTotal       uint64
	predictionsTotal uint64
	perVariant       map[bodyfat.Variant]uint64

	// Admission: single in-flight evaluation behind a bounded queue.
	genCh         chan struct{}
	queueCh       chan struct{}
	maxQueueDepth int
	maxWait       time.Duration

	loc    *time.Location
	now    func() time.Time
	log    zerolog.Logger
	pub    EventPublisher
	recent *EventLog
}

// New builds a manager over reg with package defaults.
func New(reg []types.Model) *Manager {
	return NewWithConfig(ManagerConfig{Registry: reg})
}

// SetEventPublisher replaces the event sink; nil restores the no-op sink.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		p = noopPublisher{}
	}
	m.pub = p
}

// Ready reports whether the manager can serve predictions.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady
}

// ListModels returns the registered artifacts with their cache state.
func (m *Manager) ListModels() []types.Model {
	m.mu.RLock()
	out := make([]types.Model, len(m.registry))
	copy(out, m.registry)
	m.mu.RUnlock()
	for i := range out {
		out[i].Loaded = m.cache.has(bodyfat.Variant(out[i].ID))
	}
	return out
}

func (m *Manager) lookup(v bodyfat.Variant) (types.Model, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, mdl := range m.registry {
		if mdl.ID == string(v) {
			return mdl, true
		}
	}
	return types.Model{}, false
}

// RecentEvents returns the last events the manager published, oldest first.
func (m *Manager) RecentEvents() []Event { return m.recent.Events() }

func (m *Manager) publish(e Event) {
	if e.At.IsZero() {
		e.At = m.now()
	}
	m.recent.Publish(e)
	m.mu.RLock()
	p := m.pub
	m.mu.RUnlock()
	p.Publish(e)
}
