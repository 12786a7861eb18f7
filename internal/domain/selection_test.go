package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelection_AcceptsAllValidMonths(t *testing.T) {
	for months := MinMonths; months <= MaxMonths; months++ {
		sel, err := NewSelection(PermitTypeResident, VehicleTypeCar, false, months)
		require.NoError(t, err, "months=%d", months)
		assert.Equal(t, months, sel.Months())
	}
}

func TestNewSelection_RejectsOutOfRangeMonths(t *testing.T) {
	tests := []struct {
		name   string
		months int
	}{
		{"zero", 0},
		{"thirteen", 13},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelection(PermitTypeResident, VehicleTypeCar, false, tt.months)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
}

func TestNewSelection_RequiresPermitAndVehicleType(t *testing.T) {
	tests := []struct {
		name    string
		permit  PermitType
		vehicle VehicleType
	}{
		{"unset permit", "", VehicleTypeCar},
		{"unset vehicle", PermitTypeCommuter, ""},
		{"unknown permit", "FACULTY", VehicleTypeCar},
		{"unknown vehicle", PermitTypeResident, "TRUCK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelection(tt.permit, tt.vehicle, false, 6)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
}

func TestNewSelection_ExposesAllFields(t *testing.T) {
	sel, err := NewSelection(PermitTypeCommuter, VehicleTypeSUV, true, 3)
	require.NoError(t, err)

	assert.Equal(t, PermitTypeCommuter, sel.PermitType())
	assert.Equal(t, VehicleTypeSUV, sel.VehicleType())
	assert.True(t, sel.Carpool())
	assert.Equal(t, 3, sel.Months())
}

func TestParsePermitType(t *testing.T) {
	tests := []struct {
		input   string
		want    PermitType
		wantErr bool
	}{
		{"RESIDENT", PermitTypeResident, false},
		{"resident", PermitTypeResident, false},
		{"  Commuter ", PermitTypeCommuter, false},
		{"faculty", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePermitType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		input   string
		want    VehicleType
		wantErr bool
	}{
		{"CAR", VehicleTypeCar, false},
		{"suv", VehicleTypeSUV, false},
		{"Motorcycle", VehicleTypeMotorcycle, false},
		{"truck", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVehicleType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
