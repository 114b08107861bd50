package workflow_test

import (
	"errors"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestReserve(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		max       *int
		delta     int
		want      int
		requested int
		limit     int
		exceeded  bool
	}{
		{name: "fills last slot", current: 3, max: intPtr(5), delta: 2, want: 5},
		{name: "one over", current: 5, max: intPtr(5), delta: 1, exceeded: true, requested: 6, limit: 5},
		{name: "far over", current: 3, max: intPtr(5), delta: 10, exceeded: true, requested: 13, limit: 5},
		{name: "unbounded", current: 1000, max: nil, delta: 1, want: 1001},
		{name: "unbounded large delta", current: 0, max: nil, delta: 1 << 20, want: 1 << 20},
		{name: "zero delta", current: 5, max: intPtr(5), delta: 0, want: 5},
		{name: "release", current: 5, max: intPtr(5), delta: -2, want: 3},
		{name: "release clamps at zero", current: 1, max: intPtr(5), delta: -3, want: 0},
		{name: "release when already over limit", current: 7, max: intPtr(5), delta: -1, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := workflow.Reserve(tt.current, tt.max, tt.delta)
			if !tt.exceeded {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCapacityExceeded))

			var capErr *domain.CapacityExceededError
			require.True(t, errors.As(err, &capErr))
			assert.Equal(t, tt.requested, capErr.Requested)
			assert.Equal(t, tt.limit, capErr.Limit)
			assert.Equal(t, tt.current, got)
		})
	}
}

func TestReserve_UnboundedNeverFails(t *testing.T) {
	for current := 0; current < 50; current += 7 {
		for delta := 0; delta < 50; delta += 5 {
			_, err := workflow.Reserve(current, nil, delta)
			assert.NoError(t, err)
		}
	}
}

func TestSpotsAvailable(t *testing.T) {
	assert.True(t, workflow.SpotsAvailable(2, intPtr(5)))
	assert.True(t, workflow.SpotsAvailable(4, intPtr(5)))
	assert.False(t, workflow.SpotsAvailable(5, intPtr(5)))
	assert.False(t, workflow.SpotsAvailable(6, intPtr(5)))
	assert.True(t, workflow.SpotsAvailable(500, nil))
	assert.False(t, workflow.SpotsAvailable(0, intPtr(0)))
}
