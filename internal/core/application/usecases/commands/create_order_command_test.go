package commands_test

import (
	"testing"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	facilityID := kernel.NewUUID()
	items := []commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 3}}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, facilityID, items, nil)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, orderID, cmd.OrderID())
		require.Equal(t, facilityID, cmd.FacilityID())
		require.Len(t, cmd.Items(), 1)
		require.Nil(t, cmd.CreatedBy())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, facilityID, items, nil)
		require.Error(t, err)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, facilityID, nil, nil)
		require.ErrorIs(t, err, commands.ErrOrderHasNoItems)
	})

	t.Run("zero quantity", func(t *testing.T) {
		bad := []commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(orderID, facilityID, bad, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		bad := []commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: -2}}
		_, err := commands.NewCreateOrderCommand(orderID, facilityID, bad, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid created by", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderID, facilityID, items, &kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("default constructed command fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
