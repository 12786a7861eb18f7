package domain

const (
	// MinMonths and MaxMonths bound the permit duration.
	MinMonths = 1
	MaxMonths = 12
)

// Selection is a validated, immutable record of one permit request.
// It is constructed only through NewSelection and never exists in an
// invalid state.
type Selection struct {
	permitType  PermitType
	vehicleType VehicleType
	carpool     bool
	months      int
}

// NewSelection validates the inputs and builds a Selection. It returns an
// error wrapping ErrInvalidSelection when the permit or vehicle type is
// unset or unknown, or when months is outside [MinMonths, MaxMonths].
func NewSelection(permit PermitType, vehicle VehicleType, carpool bool, months int) (Selection, error) {
	if permit == "" {
		return Selection{}, invalidSelectionf("permit type must be set")
	}
	if !permit.Valid() {
		return Selection{}, invalidSelectionf("unknown permit type %q", string(permit))
	}
	if vehicle == "" {
		return Selection{}, invalidSelectionf("vehicle type must be set")
	}
	if !vehicle.Valid() {
		return Selection{}, invalidSelectionf("unknown vehicle type %q", string(vehicle))
	}
	if months < MinMonths || months > MaxMonths {
		return Selection{}, invalidSelectionf("months must be between %d and %d, got %d", MinMonths, MaxMonths, months)
	}

	return Selection{
		permitType:  permit,
		vehicleType: vehicle,
		carpool:     carpool,
		months:      months,
	}, nil
}

// PermitType returns the selected permit type.
func (s Selection) PermitType() PermitType { return s.permitType }

// VehicleType returns the selected vehicle type.
func (s Selection) VehicleType() VehicleType { return s.vehicleType }

// Carpool reports whether the carpool discount was requested.
func (s Selection) Carpool() bool { return s.carpool }

// Months returns the permit duration in months.
func (s Selection) Months() int { return s.months }
