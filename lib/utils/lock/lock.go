package lock

import (
	"context"
	"sync"
	"time"
)

const retryInterval = 50 * time.Millisecond

var lockMap sync.Map

// WithDelay выполняет safeCode под блокировкой key внутри процесса.
// Если блокировку не удалось получить за wait или ctx завершен, возвращает false без запуска safeCode.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, struct{}{}); !loaded {
			break
		}
		select {
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(retryInterval):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
