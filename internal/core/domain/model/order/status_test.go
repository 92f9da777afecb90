package order_test

import (
	"fmt"
	"testing"

	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Active))
	assert.Equal(t, 2, int(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		require.NoError(t, order.Active.Validate())
		require.NoError(t, order.Cancelled.Validate())
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(3), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Active, "active"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow transition from Active to Cancelled", func(t *testing.T) {
		next, err := order.Active.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("should reject cancelling twice", func(t *testing.T) {
		next, err := order.Cancelled.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), next)
		assert.Contains(t, err.Error(), "cancelled is not a valid status to cancel")
	})

	t.Run("should reject cancelling Unknown", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_ValidateMutable(t *testing.T) {
	require.NoError(t, order.Active.ValidateMutable())

	err := order.Cancelled.ValidateMutable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled is not a valid status to modify")
}

func TestSettlementStatus_Settle(t *testing.T) {
	t.Run("should settle an unsettled order", func(t *testing.T) {
		next, err := order.Unsettled.Settle()

		require.NoError(t, err)
		assert.Equal(t, order.Settled, next)
		assert.Equal(t, "settled", next.String())
	})

	t.Run("should reject settling twice", func(t *testing.T) {
		next, err := order.Settled.Settle()

		require.Error(t, err)
		assert.Equal(t, order.Settled, next)
		assert.Contains(t, err.Error(), "settled is not a valid settlement status to settle")
	})
}
