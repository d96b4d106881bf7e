package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`runs code and returns its error`, func(t *testing.T) {
		ok, err := WithDelay(context.Background(), "k1", time.Second, func() error {
			return errors.New("fail")
		})
		require.True(t, ok)
		require.EqualError(t, err, "fail")

		ok, err = WithDelay(context.Background(), "k1", time.Second, func() error { return nil })
		require.True(t, ok)
		require.NoError(t, err)
	})

	t.Run(`same key is exclusive`, func(t *testing.T) {
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, _ := WithDelay(context.Background(), "k2", 5*time.Second, func() error {
					current := atomic.AddInt32(&active, 1)
					for {
						prev := atomic.LoadInt32(&maxActive)
						if current <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, current) {
							break
						}
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				require.True(t, ok)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})

	t.Run(`timeout`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "k3", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ran := false
		ok, err := WithDelay(context.Background(), "k3", 100*time.Millisecond, func() error {
			ran = true
			return nil
		})
		close(release)
		require.False(t, ok)
		require.NoError(t, err)
		require.False(t, ran)
	})
}
