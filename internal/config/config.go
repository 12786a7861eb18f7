package config

import (
	"github.com/shopspring/decimal"

	"permit/internal/domain"
)

// Config holds the rate table used for pricing. All amounts and factors are
// decimals so intermediate arithmetic never touches binary floating point.
type Config struct {
	ResidentMonthly    decimal.Decimal // base monthly rate for resident permits
	CommuterMonthly    decimal.Decimal // base monthly rate for commuter permits, before reduction
	CommuterReduction  decimal.Decimal // unconditional reduction applied inside the commuter strategy
	VehicleMultipliers map[domain.VehicleType]decimal.Decimal
	CarpoolDiscount    decimal.Decimal // multiplier applied when carpool is selected
	CampusFeeRate      decimal.Decimal // flat rate applied to the subtotal
}

// Default returns the canonical campus rate table.
func Default() Config {
	return Config{
		ResidentMonthly:   decimal.RequireFromString("45.00"),
		CommuterMonthly:   decimal.RequireFromString("35.00"),
		CommuterReduction: decimal.RequireFromString("0.15"),
		VehicleMultipliers: map[domain.VehicleType]decimal.Decimal{
			domain.VehicleTypeCar:        decimal.RequireFromString("1.00"),
			domain.VehicleTypeSUV:        decimal.RequireFromString("1.15"),
			domain.VehicleTypeMotorcycle: decimal.RequireFromString("0.70"),
		},
		CarpoolDiscount: decimal.RequireFromString("0.90"),
		CampusFeeRate:   decimal.RequireFromString("0.05"),
	}
}
