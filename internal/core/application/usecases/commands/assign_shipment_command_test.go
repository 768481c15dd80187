package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignShipmentCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAssignShipmentCommand(orderID)

		require.NoError(t, err)
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		require.NoError(t, cmd.Validate())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewAssignShipmentCommand(kernel.UUID{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.AssignShipmentCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignShipmentCommandIsNotConstructed)
	})
}
