package manager

import (
	"time"

	"github.com/rs/zerolog"

	"bodyfatd/pkg/types"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
	recentEventsSize     = 32
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Registry      []types.Model
	MaxQueueDepth int
	MaxWait       time.Duration
	// ExportLocation is the time zone export rows are stamped in (default Local).
	ExportLocation *time.Location
	// Now overrides the wall clock; tests pin it.
	Now       func() time.Time
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		registry: append([]types.Model(nil), cfg.Registry...),
		cache:    newCache(),
		loc:      cfg.ExportLocation,
		now:      cfg.Now,
		pub:      cfg.Publisher,
		recent:   NewEventLog(recentEventsSize),
	}
	if cfg.MaxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	} else {
		m.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		m.maxWait = defaultMaxWait
	} else {
		m.maxWait = cfg.MaxWait
	}
	if m.loc == nil {
		m.loc = time.Local
	}
	if m.now == nil {
		m.now = time.Now
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	} else {
		m.log = zerolog.Nop()
	}
	if m.pub == nil {
		m.pub = noopPublisher{}
	}
	m.genCh = make(chan struct{}, 1)
	m.queueCh = make(chan struct{}, m.maxQueueDepth)
	if len(m.registry) == 0 {
		m.state = StateError
		m.err = "no model artifacts registered"
	} else {
		m.state = StateReady
	}
	m.startTime = m.now()
	return m
}
