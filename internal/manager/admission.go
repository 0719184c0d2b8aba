package manager

import (
	"context"
	"time"
)

// acquireSlot waits for a queue place and then for the single evaluation
// slot. Both waits share one maxWait budget. On success the returned func
// releases both.
func (m *Manager) acquireSlot(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deadline := time.NewTimer(m.maxWait)
	defer deadline.Stop()

	select {
	case m.queueCh <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-deadline.C:
		return nil, tooBusyError{stage: "queue"}
	}

	select {
	case m.genCh <- struct{}{}:
		return func() {
			<-m.genCh
			<-m.queueCh
		}, nil
	case <-ctx.Done():
		<-m.queueCh
		return nil, ctx.Err()
	case <-deadline.C:
		<-m.queueCh
		return nil, tooBusyError{stage: "slot"}
	}
}
