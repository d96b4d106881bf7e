package pagedata

import (
	"context"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func value(v interface{}) func(ctx context.Context) (interface{}, error) {
	return func(ctx context.Context) (interface{}, error) {
		return v, nil
	}
}

func failed(ctx context.Context) (interface{}, error) {
	return nil, errors.New("service unavailable")
}

func TestLoad(t *testing.T) {
	t.Run(`all sources loaded`, func(t *testing.T) {
		res, err := Load(context.Background(),
			Source{Name: "records", Essential: true, Load: value([]int{1, 2})},
			Source{Name: "employees", Essential: true, Load: value("roster")},
			Source{Name: "lines", Load: value(3)},
		)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, res.Get("records"))
		require.Equal(t, "roster", res.Get("employees"))
		require.Equal(t, 3, res.Get("lines"))
		require.Empty(t, res.Degraded)
		require.Empty(t, res.Notice)
	})

	t.Run(`optional source failure degrades only that source`, func(t *testing.T) {
		res, err := Load(context.Background(),
			Source{Name: "records", Essential: true, Load: value("records")},
			Source{Name: "employees", Essential: true, Load: value("roster")},
			Source{Name: "departments", Essential: true, Load: value("departments")},
			Source{Name: "lines", Title: "линии", Load: failed},
		)
		require.NoError(t, err)
		require.Equal(t, "records", res.Get("records"))
		require.Equal(t, "departments", res.Get("departments"))
		require.Nil(t, res.Get("lines"))
		require.Equal(t, []string{"lines"}, res.Degraded)
		require.True(t, res.IsDegraded("lines"))
		require.False(t, res.IsDegraded("records"))
		require.Equal(t, "Часть данных недоступна: линии", res.Notice)
	})

	t.Run(`single notice for several optional failures`, func(t *testing.T) {
		res, err := Load(context.Background(),
			Source{Name: "a", Load: failed},
			Source{Name: "b", Load: failed},
		)
		require.NoError(t, err)
		sort.Strings(res.Degraded)
		require.Equal(t, []string{"a", "b"}, res.Degraded)
		require.Contains(t, res.Notice, "Часть данных недоступна")
	})

	t.Run(`essential failure fails load without cancelling siblings`, func(t *testing.T) {
		var finished atomic.Bool
		_, err := Load(context.Background(),
			Source{Name: "records", Essential: true, Load: failed},
			Source{Name: "slow", Load: func(ctx context.Context) (interface{}, error) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(20 * time.Millisecond):
				}
				finished.Store(true)
				return 1, nil
			}},
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "records")
		require.True(t, finished.Load())
	})

	t.Run(`sources run concurrently`, func(t *testing.T) {
		start := make(chan struct{})
		var started atomic.Int32
		wait := func(ctx context.Context) (interface{}, error) {
			if started.Add(1) == 2 {
				close(start)
			}
			select {
			case <-start:
				return nil, nil
			case <-time.After(time.Second):
				return nil, errors.New("not concurrent")
			}
		}
		res, err := Load(context.Background(),
			Source{Name: "a", Essential: true, Load: wait},
			Source{Name: "b", Essential: true, Load: wait},
		)
		require.NoError(t, err)
		require.Empty(t, res.Degraded)
	})

	t.Run(`panic in source is an error`, func(t *testing.T) {
		res, err := Load(context.Background(),
			Source{Name: "lines", Load: func(ctx context.Context) (interface{}, error) { panic("boom") }},
		)
		require.NoError(t, err)
		require.Equal(t, []string{"lines"}, res.Degraded)
	})
}
