package usecase

import (
	"context"
	"sync"
	"time"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"
	"portal_posvenda/internal/infrastructure/metrics"
	"portal_posvenda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const drainTimeout = 5 * time.Second

// SnapshotOutbox writes request snapshots to the repository off the request path.
// Publish never blocks. Pending snapshots are coalesced per request id, so the
// worker always persists the latest state of every request it was given.
type SnapshotOutbox struct {
	repo     interfaces.IWarrantyRequestRepository
	backlog  int
	logger   *zap.Logger
	metrics  *metrics.Metrics
	wake     chan struct{}
	mu       sync.Mutex
	pending  map[string]entities.WarrantyRequestFlow
	order    []string
	overfull bool
}

// NewSnapshotOutbox builds an outbox. backlog is the pending request count
// above which a warning is logged; nothing is discarded past it.
func NewSnapshotOutbox(repo interfaces.IWarrantyRequestRepository, backlog int, log *zap.Logger, m *metrics.Metrics) *SnapshotOutbox {
	if backlog <= 0 {
		backlog = 1
	}
	return &SnapshotOutbox{
		repo:    repo,
		backlog: backlog,
		logger:  logger.OrNop(log),
		metrics: m,
		wake:    make(chan struct{}, 1),
		pending: make(map[string]entities.WarrantyRequestFlow),
	}
}

func (o *SnapshotOutbox) Publish(r entities.WarrantyRequestFlow) {
	if o == nil {
		return
	}
	o.mu.Lock()
	if _, queued := o.pending[r.ID]; queued {
		o.metrics.ObserveOutboxCoalesced()
	} else {
		o.order = append(o.order, r.ID)
	}
	o.pending[r.ID] = r
	if len(o.order) > o.backlog && !o.overfull {
		o.overfull = true
		o.logger.Warn("[warranty][outbox] backlog above threshold", zap.Int("pending", len(o.order)), zap.Int("threshold", o.backlog))
	}
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
}

// Run persists pending snapshots until ctx is cancelled, then flushes what is left.
func (o *SnapshotOutbox) Run(ctx context.Context) {
	for {
		select {
		case <-o.wake:
			o.drain(ctx)
		case <-ctx.Done():
			o.flush()
			return
		}
	}
}

func (o *SnapshotOutbox) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	o.drain(ctx)
}

// drain saves pending snapshots oldest request first. A request published
// again while its save is in flight is queued anew and saved after it.
func (o *SnapshotOutbox) drain(ctx context.Context) {
	for {
		r, ok := o.next()
		if !ok {
			return
		}
		o.save(ctx, r)
	}
}

func (o *SnapshotOutbox) next() (entities.WarrantyRequestFlow, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.order) == 0 {
		o.overfull = false
		return entities.WarrantyRequestFlow{}, false
	}
	id := o.order[0]
	o.order = o.order[1:]
	r := o.pending[id]
	delete(o.pending, id)
	return r, true
}

func (o *SnapshotOutbox) save(ctx context.Context, r entities.WarrantyRequestFlow) {
	if err := o.repo.Save(ctx, r); err != nil {
		o.logger.Error("[warranty][outbox] snapshot save failed",
			zap.String("request_id", r.ID),
			zap.String("stage", string(r.CurrentStage)),
			zap.Error(err),
		)
	}
}
