package commands_test

import (
	"testing"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewRequestTransitionCommand(t *testing.T) {
	actor, err := order.NewActor("emp-1", "Dana")
	require.NoError(t, err)

	t.Run("valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cmd, cmdErr := commands.NewRequestTransitionCommand(orderID, order.Cancelled, actor)
		require.NoError(t, cmdErr)
		require.NoError(t, cmd.Validate())
		require.Equal(t, orderID, cmd.OrderID())
		require.Equal(t, order.Cancelled, cmd.NewStatus())
		require.Equal(t, "emp-1", cmd.Actor().ID())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, cmdErr := commands.NewRequestTransitionCommand(kernel.UUID{}, order.Cancelled, actor)
		require.Error(t, cmdErr)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, cmdErr := commands.NewRequestTransitionCommand(kernel.NewUUID(), order.Status(42), actor)
		require.Error(t, cmdErr)
	})

	t.Run("unknown status is rejected even as zero value", func(t *testing.T) {
		_, cmdErr := commands.NewRequestTransitionCommand(kernel.NewUUID(), order.Unknown, actor)
		require.Error(t, cmdErr)
	})

	t.Run("default constructed command fails validation", func(t *testing.T) {
		cmd := commands.RequestTransitionCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrRequestTransitionCommandIsNotConstructed)
	})
}
