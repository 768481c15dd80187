package driver_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("starts_available_with_no_location", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Maria Lopez", nil)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.IsAvailable())
		assert.Nil(t, d.Location())
		assert.Nil(t, d.VehicleID())
	})

	t.Run("with_vehicle", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		d, err := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", &vehicleID)

		require.NoError(t, err)
		require.NotNil(t, d.VehicleID())
		assert.True(t, vehicleID.IsEqual(*d.VehicleID()))
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", nil)

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("invalid_id_rejected", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "Maria Lopez", nil)

		require.Error(t, err)
	})
}

func TestDriver_ClaimRelease(t *testing.T) {
	t.Run("claim_flips_availability", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)

		require.NoError(t, d.Claim())

		assert.False(t, d.IsAvailable())
	})

	t.Run("claim_of_unavailable_driver_fails", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)
		require.NoError(t, d.Claim())

		err := d.Claim()

		require.ErrorIs(t, err, driver.ErrDriverNotAvailable)
		assert.False(t, d.IsAvailable())
	})

	t.Run("release_restores_availability", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)
		require.NoError(t, d.Claim())

		d.Release()

		assert.True(t, d.IsAvailable())
	})

	t.Run("release_of_available_driver_is_noop", func(t *testing.T) {
		d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)

		d.Release()

		assert.True(t, d.IsAvailable())
	})
}

func TestDriver_MoveTo(t *testing.T) {
	d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)
	point, _ := kernel.NewGeoPoint(4.6097, -74.0817)

	require.NoError(t, d.MoveTo(point))

	require.NotNil(t, d.Location())
	assert.True(t, point.IsEqual(*d.Location()))
}

func TestDriver_MoveTo_InvalidPoint(t *testing.T) {
	d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)

	err := d.MoveTo(kernel.GeoPoint{})

	require.Error(t, err)
	assert.Nil(t, d.Location())
}

func TestRestoreDriver(t *testing.T) {
	id := kernel.NewUUID()
	point, _ := kernel.NewGeoPoint(10, 20)

	d, err := driver.RestoreDriver(id, "Maria Lopez", false, &point, nil)

	require.NoError(t, err)
	assert.False(t, d.IsAvailable())
	require.NotNil(t, d.Location())
	assert.True(t, point.IsEqual(*d.Location()))
}

func TestDriver_SetProfile_DoesNotTouchAvailability(t *testing.T) {
	d, _ := driver.NewDriver(kernel.NewUUID(), "Maria Lopez", nil)
	require.NoError(t, d.Claim())

	require.NoError(t, d.SetProfile("Maria Gonzalez"))

	assert.Equal(t, "Maria Gonzalez", d.Name())
	assert.False(t, d.IsAvailable())
}

func TestDriver_Validate_ZeroValue(t *testing.T) {
	var d driver.Driver

	require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}
