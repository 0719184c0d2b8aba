package manager

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"bodyfatd/internal/bodyfat"
	"bodyfatd/internal/regression"
)

// Model returns the predictor for v, loading the artifact on first use.
// It implements bodyfat.ModelStore.
func (m *Manager) Model(v bodyfat.Variant) (bodyfat.Predictor, error) {
	if e, ok := m.cache.get(v); ok {
		return e.model, nil
	}
	e, err := m.load(v)
	if err != nil {
		return nil, err
	}
	return e.model, nil
}

func (m *Manager) load(v bodyfat.Variant) (cacheEntry, error) {
	start := m.now()
	m.publish(Event{Kind: EventLoadStart, Variant: v})
	mdl, ok := m.lookup(v)
	if !ok {
		m.log.Warn().Str("event", "load_model_not_found").Str("variant", string(v)).Msg("no artifact registered")
		m.publish(Event{Kind: EventModelNotFound, Variant: v})
		modelLoadsTotal.WithLabelValues(string(v), "not_found").Inc()
		return cacheEntry{}, bodyfat.ErrModelNotFound(v)
	}
	lin, err := regression.LoadFile(mdl.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.setLoadErr(v, err)
			m.log.Warn().Str("event", "load_model_not_found").Str("variant", string(v)).Str("path", mdl.Path).Msg("artifact file missing")
			m.publish(Event{Kind: EventModelNotFound, Variant: v, Fields: map[string]any{"path": mdl.Path}})
			modelLoadsTotal.WithLabelValues(string(v), "not_found").Inc()
			return cacheEntry{}, bodyfat.ErrModelNotFound(v)
		}
		m.setLoadErr(v, err)
		m.log.Error().Err(err).Str("event", "load_error").Str("variant", string(v)).Str("path", mdl.Path).Msg("artifact load failed")
		m.publish(Event{Kind: EventLoadError, Variant: v, Fields: map[string]any{"error": err.Error()}})
		modelLoadsTotal.WithLabelValues(string(v), "error").Inc()
		return cacheEntry{}, ErrArtifactLoad(v, err)
	}
	e := m.cache.store(v, cacheEntry{model: lin, path: mdl.Path, loadedAt: m.now()})
	m.mu.Lock()
	m.loadsTotal++
	delete(m.loadErrs, v)
	if m.state == StateError {
		m.state = StateReady
	}
	m.mu.Unlock()
	modelLoadsTotal.WithLabelValues(string(v), "ok").Inc()
	dur := m.now().Sub(start)
	m.log.Info().Str("event", "load_ready").Str("variant", string(v)).Str("path", mdl.Path).Dur("dur", dur).Msg("model loaded")
	m.publish(Event{Kind: EventLoadReady, Variant: v, Fields: map[string]any{"dur_ms": int(dur / time.Millisecond)}})
	return e, nil
}

// Preload loads every registered artifact. It is meant to run once at process
// start; afterwards the cache is only read. Variants that fail to load are
// reported in the joined error and left for lazy loading.
func (m *Manager) Preload() error {
	m.mu.Lock()
	if len(m.registry) > 0 {
		m.state = StateLoading
	}
	m.mu.Unlock()

	var errs []error
	loaded := 0
	for _, v := range bodyfat.Variants {
		if _, ok := m.lookup(v); !ok {
			continue
		}
		if _, err := m.Model(v); err != nil {
			errs = append(errs, err)
			continue
		}
		loaded++
	}

	m.mu.Lock()
	switch {
	case loaded > 0:
		m.state = StateReady
	case len(m.registry) == 0:
		m.state = StateError
		m.err = "no model artifacts registered"
	default:
		m.state = StateError
	}
	m.mu.Unlock()
	return errors.Join(errs...)
}

// setLoadErr records the last load failure of v until v loads successfully.
func (m *Manager) setLoadErr(v bodyfat.Variant, err error) {
	m.mu.Lock()
	if m.loadErrs == nil {
		m.loadErrs = make(map[bodyfat.Variant]string)
	}
	m.loadErrs[v] = err.Error()
	m.mu.Unlock()
}

// lastError reports the manager-wide error, else the outstanding load
// failures in variant order. Callers hold m.mu.
func (m *Manager) lastError() string {
	if m.err != "" {
		return m.err
	}
	var parts []string
	for _, v := range bodyfat.Variants {
		if msg, ok := m.loadErrs[v]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}
