package domain

import "strings"

// PermitType classifies a parking permit and selects its base-rate pricing.
type PermitType string

const (
	PermitTypeResident PermitType = "RESIDENT"
	PermitTypeCommuter PermitType = "COMMUTER"
)

// Valid reports whether the permit type is one of the known variants.
func (p PermitType) Valid() bool {
	switch p {
	case PermitTypeResident, PermitTypeCommuter:
		return true
	}
	return false
}

// ParsePermitType parses free text into a PermitType, case-insensitively.
func ParsePermitType(s string) (PermitType, error) {
	p := PermitType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", invalidSelectionf("unknown permit type %q", s)
	}
	return p, nil
}

// VehicleType classifies the vehicle on a permit. Each variant carries a
// fixed rate multiplier; the table lives in the rate configuration.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeSUV        VehicleType = "SUV"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
)

// Valid reports whether the vehicle type is one of the known variants.
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTypeCar, VehicleTypeSUV, VehicleTypeMotorcycle:
		return true
	}
	return false
}

// ParseVehicleType parses free text into a VehicleType, case-insensitively.
func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", invalidSelectionf("unknown vehicle type %q", s)
	}
	return v, nil
}
