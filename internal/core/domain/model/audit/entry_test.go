package audit_test

import (
	"testing"
	"time"

	"stockflow/internal/core/domain/model/audit"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	orderID := kernel.NewUUID()
	changedAt := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

	t.Run("valid entry", func(t *testing.T) {
		entry, err := audit.NewEntry(orderID, order.Created, order.Cancelled, "emp-1", "Dana", changedAt)
		require.NoError(t, err)
		require.NoError(t, entry.Validate())

		assert.Equal(t, orderID, entry.OrderID())
		assert.Equal(t, order.Created, entry.OldStatus())
		assert.Equal(t, order.Cancelled, entry.NewStatus())
		assert.Equal(t, "emp-1", entry.ActorID())
		assert.Equal(t, "Dana", entry.ActorName())
		assert.Equal(t, changedAt, entry.ChangedAt())
		assert.NoError(t, entry.ID().Validate())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.UUID{}, order.Created, order.Cancelled, "emp-1", "Dana", changedAt)
		require.Error(t, err)
	})

	t.Run("empty actor id", func(t *testing.T) {
		_, err := audit.NewEntry(orderID, order.Created, order.Cancelled, "", "Dana", changedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreEntry_KeepsIdentity(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	changedAt := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

	entry, err := audit.RestoreEntry(id, orderID, order.Created, order.Scanned, "emp-1", "Dana", changedAt)
	require.NoError(t, err)

	assert.Equal(t, id, entry.ID())
	assert.Equal(t, orderID, entry.OrderID())
}

func TestEntry_Validate_NotConstructed(t *testing.T) {
	var entry *audit.Entry
	require.Error(t, entry.Validate())
	require.Error(t, (&audit.Entry{}).Validate())
}
