package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"permit/internal/config"
	"permit/internal/domain"
)

// ReceiptService prices a selection and renders receipts.
type ReceiptService struct {
	cfg config.Config
}

// NewReceiptService creates a new ReceiptService using the given rate table.
func NewReceiptService(cfg config.Config) *ReceiptService {
	return &ReceiptService{cfg: cfg}
}

// Generate prices the selection and returns a receipt for it.
func (s *ReceiptService) Generate(sel domain.Selection) *domain.Receipt {
	calc := NewCalculator(s.cfg, sel)
	subtotal := calc.ComputeSubtotal(sel)

	return &domain.Receipt{
		ID:          uuid.New().String(),
		PermitType:  sel.PermitType(),
		VehicleType: sel.VehicleType(),
		Carpool:     sel.Carpool(),
		Months:      sel.Months(),
		Subtotal:    subtotal,
		CampusFee:   calc.ComputeCampusFee(subtotal),
		Total:       calc.ComputeTotal(subtotal),
		CreatedAt:   time.Now(),
	}
}

// FormatReceipt formats the receipt as a fixed-layout text block. Monetary
// figures are rounded half-up to two decimals here and nowhere earlier.
func (s *ReceiptService) FormatReceipt(receipt *domain.Receipt) string {
	return `
=====================================
      PARKING PERMIT RECEIPT
=====================================
Receipt ID: ` + receipt.ID + `
Date: ` + receipt.CreatedAt.Format("Jan 02, 2006 3:04 PM") + `

PERMIT DETAILS
-------------------------------------
Permit Type:  ` + string(receipt.PermitType) + `
Vehicle Type: ` + string(receipt.VehicleType) + `
Carpool:      ` + formatYesNo(receipt.Carpool) + `
Months:       ` + fmt.Sprintf("%d", receipt.Months) + `

PRICE BREAKDOWN
-------------------------------------
Subtotal:     $` + formatAmount(receipt.Subtotal) + `
Campus Fee:   $` + formatAmount(receipt.CampusFee) + `
-------------------------------------
TOTAL:        $` + formatAmount(receipt.Total) + `
=====================================
`
}

// formatAmount renders a monetary amount with two decimals. StringFixed
// rounds half away from zero, which is half-up for the non-negative
// amounts this system produces.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
