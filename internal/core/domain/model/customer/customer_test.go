package customer_test

import (
	"testing"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Acme Corp", "Main St 1", "555-0100", "ops@acme.test")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, id.IsEqual(c.ID()))
		assert.Equal(t, "Acme Corp", c.Name())
		assert.Equal(t, "ops@acme.test", c.Email())
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "", "", "")

		require.ErrorIs(t, err, customer.ErrNameIsRequired)
	})

	t.Run("invalid_id_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "Acme Corp", "", "", "")

		require.Error(t, err)
	})
}

func TestCustomer_Validate_ZeroValue(t *testing.T) {
	var c customer.Customer

	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
