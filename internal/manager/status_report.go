package manager

import (
	"bodyfatd/internal/bodyfat"
	"bodyfatd/pkg/types"
)

// Snapshot returns a read-only view of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	s := Snapshot{State: m.state, Err: m.lastError()}
	m.mu.RUnlock()
	s.Loaded = m.cache.variants()
	return s
}

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	now := m.now()
	m.mu.RLock()
	resp := types.StatusResponse{
		State:            string(m.state),
		LastError:        m.lastError(),
		QueueLen:         len(m.queueCh),
		Inflight:         len(m.genCh),
		MaxQueueDepth:    cap(m.queueCh),
		LoadsTotal:       m.loadsTotal,
		PredictionsTotal: m.predictionsTotal,
		UptimeSeconds:    int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:   now.Unix(),
	}
	counts := make(map[bodyfat.Variant]uint64, len(m.perVariant))
	for v, n := range m.perVariant {
		counts[v] = n
	}
	m.mu.RUnlock()

	resp.Variants = make([]types.VariantStatus, 0, len(bodyfat.Variants))
	for _, v := range bodyfat.Variants {
		_, available := m.lookup(v)
		vs := types.VariantStatus{Variant: string(v), Available: available, Predictions: counts[v]}
		if e, ok := m.cache.get(v); ok {
			vs.Loaded = true
			vs.LoadedAt = e.loadedAt.Unix()
		}
		resp.Variants = append(resp.Variants, vs)
	}
	for _, e := range m.recent.Events() {
		resp.RecentEvents = append(resp.RecentEvents, types.EventRecord{Kind: string(e.Kind), Variant: string(e.Variant), AtUnix: e.At.Unix()})
	}
	return resp
}
