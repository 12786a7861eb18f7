package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt captures the outcome of one priced permit selection. Receipts are
// ephemeral: generated, printed, and discarded within a single interaction.
type Receipt struct {
	ID          string
	PermitType  PermitType
	VehicleType VehicleType
	Carpool     bool
	Months      int
	Subtotal    decimal.Decimal
	CampusFee   decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}
