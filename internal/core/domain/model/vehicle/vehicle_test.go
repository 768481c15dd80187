package vehicle_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := vehicle.NewVehicle(kernel.NewUUID(), "ABC-123", "van", "Sprinter", "Mercedes")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "ABC-123", v.Plate())
		assert.Equal(t, "van", v.Kind())
	})

	t.Run("empty_plate_rejected", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "", "van", "", "")

		require.ErrorIs(t, err, vehicle.ErrPlateIsRequired)
	})
}

func TestVehicle_Validate_ZeroValue(t *testing.T) {
	var v vehicle.Vehicle

	require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}
