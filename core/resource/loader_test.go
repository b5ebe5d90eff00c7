package resource_test

import (
	"context"
	"testing"

	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("should go through loading into success", func(t *testing.T) {
		var states []resource.State
		l := resource.NewLoader(func(ctx context.Context, page int) (string, error) {
			return "page", nil
		})
		l.OnChange(func(s resource.Snapshot[string]) { states = append(states, s.State) })

		assert.Equal(t, resource.StateIdle, l.Snapshot().State)

		got, err := l.Load(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "page", got)
		assert.Equal(t, []resource.State{resource.StateLoading, resource.StateSuccess}, states)
		assert.Equal(t, resource.Snapshot[string]{State: resource.StateSuccess, Data: "page"}, l.Snapshot())
	})

	t.Run("should retry a failed load with the last params and clear the error", func(t *testing.T) {
		calls := []int{}
		fail := true
		l := resource.NewLoader(func(ctx context.Context, page int) (string, error) {
			calls = append(calls, page)
			if fail {
				return "", apierror.Network(nil)
			}
			return "ok", nil
		})

		_, err := l.Load(ctx, 3)
		assert.True(t, apierror.IsKind(err, apierror.KindNetwork))
		snap := l.Snapshot()
		assert.Equal(t, resource.StateFailed, snap.State)
		assert.Equal(t, err, snap.Err)

		fail = false
		_, err = l.Retry(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 3}, calls)
		assert.NoError(t, l.Snapshot().Err)
		assert.Equal(t, resource.StateSuccess, l.Snapshot().State)
	})

	t.Run("should refuse to retry before any load", func(t *testing.T) {
		l := resource.NewLoader(func(ctx context.Context, page int) (string, error) { return "", nil })
		_, err := l.Retry(ctx)
		assert.ErrorIs(t, err, resource.ErrNothingToRetry)
		_, ok := l.LastParams()
		assert.False(t, ok)
	})
}
