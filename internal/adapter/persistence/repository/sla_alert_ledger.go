package repository

import (
	"context"
	"sync"
	"time"

	"portal_posvenda/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// SLAAlertMemoryLedger remembers sent alerts for the lifetime of the process.
type SLAAlertMemoryLedger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

var _ interfaces.IAlertLedger = (*SLAAlertMemoryLedger)(nil)

func NewSLAAlertMemoryLedger() *SLAAlertMemoryLedger {
	return &SLAAlertMemoryLedger{seen: make(map[string]struct{})}
}

func (l *SLAAlertMemoryLedger) MarkOnce(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[key]; ok {
		return false, nil
	}
	l.seen[key] = struct{}{}
	return true, nil
}

func (l *SLAAlertMemoryLedger) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, key)
	return nil
}

// SLAAlertRedisLedger shares the sent-alert set between replicas.
// Keys expire after ttl so the set does not grow without bound.
type SLAAlertRedisLedger struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

var _ interfaces.IAlertLedger = (*SLAAlertRedisLedger)(nil)

func NewSLAAlertRedisLedger(client redis.Cmdable, prefix string, ttl time.Duration) *SLAAlertRedisLedger {
	return &SLAAlertRedisLedger{client: client, prefix: prefix, ttl: ttl}
}

func (l *SLAAlertRedisLedger) MarkOnce(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+key, 1, l.ttl).Result()
}

func (l *SLAAlertRedisLedger) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
