package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentHistoryQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		q, err := queries.NewGetShipmentHistoryQuery(nil, nil, nil, nil)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Nil(t, q.DriverID())
		assert.Nil(t, q.CustomerID())
		assert.Nil(t, q.From())
		assert.Nil(t, q.To())
	})

	t.Run("all filters", func(t *testing.T) {
		driverID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		from := time.Now().Add(-24 * time.Hour)
		to := time.Now()

		q, err := queries.NewGetShipmentHistoryQuery(&driverID, &customerID, &from, &to)

		require.NoError(t, err)
		assert.True(t, driverID.IsEqual(*q.DriverID()))
		assert.True(t, customerID.IsEqual(*q.CustomerID()))
		assert.Equal(t, from, *q.From())
		assert.Equal(t, to, *q.To())
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		from := time.Now()
		to := from.Add(-time.Hour)

		_, err := queries.NewGetShipmentHistoryQuery(nil, nil, &from, &to)

		require.ErrorIs(t, err, queries.ErrInvalidTimeRange)
	})

	t.Run("open ended range allowed", func(t *testing.T) {
		from := time.Now()

		_, err := queries.NewGetShipmentHistoryQuery(nil, nil, &from, nil)

		require.NoError(t, err)
	})

	t.Run("invalid driver id rejected", func(t *testing.T) {
		bad := kernel.UUID{}

		_, err := queries.NewGetShipmentHistoryQuery(&bad, nil, nil, nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		q := queries.GetShipmentHistoryQuery{}

		require.ErrorIs(t, q.Validate(), queries.ErrGetShipmentHistoryQueryIsNotConstructed)
	})
}
