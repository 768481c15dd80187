package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	vehicleID := kernel.NewUUID()
	now := time.Now()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		&vehicleID, now, now.Add(3*time.Hour),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("starts_pending_pickup_without_proof", func(t *testing.T) {
		s := newTestShipment(t)

		assert.Equal(t, shipment.PendingPickup, s.Status())
		assert.Nil(t, s.ActualDeliveryTime())
		assert.Empty(t, s.QRCode())
		assert.Empty(t, s.Signature())
		require.NotNil(t, s.DriverID())
		require.NotNil(t, s.VehicleID())
	})

	t.Run("nil_vehicle_snapshot_allowed", func(t *testing.T) {
		now := time.Now()

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, now, now.Add(3*time.Hour),
		)

		require.NoError(t, err)
		assert.Nil(t, s.VehicleID())
	})

	t.Run("invalid_driver_rejected", func(t *testing.T) {
		now := time.Now()

		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{},
			nil, now, now.Add(3*time.Hour),
		)

		require.Error(t, err)
	})
}

func TestShipment_RecordDelivery(t *testing.T) {
	t.Run("sets_status_proof_and_timestamp_together", func(t *testing.T) {
		s := newTestShipment(t)
		deliveredAt := time.Now()

		require.NoError(t, s.RecordDelivery("QR123", "SIG456", deliveredAt))

		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.ActualDeliveryTime())
		assert.Equal(t, deliveredAt, *s.ActualDeliveryTime())
		assert.Equal(t, "QR123", s.QRCode())
		assert.Equal(t, "SIG456", s.Signature())
	})

	t.Run("redelivery_overwrites_proof", func(t *testing.T) {
		s := newTestShipment(t)
		first := time.Now()
		require.NoError(t, s.RecordDelivery("QR1", "SIG1", first))

		second := first.Add(time.Minute)
		require.NoError(t, s.RecordDelivery("QR2", "SIG2", second))

		assert.Equal(t, shipment.Delivered, s.Status())
		assert.Equal(t, second, *s.ActualDeliveryTime())
		assert.Equal(t, "QR2", s.QRCode())
		assert.Equal(t, "SIG2", s.Signature())
	})

	t.Run("empty_proof_tokens_stored_verbatim", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.RecordDelivery("", "", time.Now()))

		assert.Empty(t, s.QRCode())
		assert.Empty(t, s.Signature())
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("without_driver", func(t *testing.T) {
		now := time.Now()

		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, nil,
			shipment.PendingPickup,
			now, now.Add(3*time.Hour), nil,
			nil, nil,
			"", "",
		)

		require.NoError(t, err)
		assert.Nil(t, s.DriverID())
	})

	t.Run("delivered_with_proof", func(t *testing.T) {
		now := time.Now()
		driverID := kernel.NewUUID()
		delivered := now.Add(time.Hour)

		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			&driverID, nil,
			shipment.Delivered,
			now, now.Add(3*time.Hour), &delivered,
			nil, nil,
			"QR123", "SIG456",
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.Equal(t, "QR123", s.QRCode())
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		now := time.Now()

		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, nil,
			shipment.Unknown,
			now, now, nil,
			nil, nil,
			"", "",
		)

		require.Error(t, err)
	})
}

func TestShipment_SetRoute(t *testing.T) {
	s := newTestShipment(t)
	origin, _ := kernel.NewGeoPoint(4.60, -74.08)
	destination, _ := kernel.NewGeoPoint(4.70, -74.04)

	require.NoError(t, s.SetRoute(origin, destination))

	require.NotNil(t, s.Origin())
	require.NotNil(t, s.Destination())
	assert.True(t, origin.IsEqual(*s.Origin()))
	assert.True(t, destination.IsEqual(*s.Destination()))
}
