package service

import (
	"github.com/shopspring/decimal"

	"permit/internal/config"
	"permit/internal/domain"
)

// RateModifier is a pure transformation of a monthly rate. Modifiers are
// stateless and may be composed in any order.
type RateModifier interface {
	Apply(rate decimal.Decimal) decimal.Decimal
}

type multiplierModifier struct {
	factor decimal.Decimal
}

func (m multiplierModifier) Apply(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(m.factor)
}

// Multiplier returns a RateModifier that scales the rate by a fixed factor.
func Multiplier(factor decimal.Decimal) RateModifier {
	return multiplierModifier{factor: factor}
}

// ModifierPipeline applies an ordered sequence of rate modifiers.
type ModifierPipeline []RateModifier

// ApplyAll feeds the rate through each modifier left to right. An empty
// pipeline returns the rate unchanged.
func (p ModifierPipeline) ApplyAll(rate decimal.Decimal) decimal.Decimal {
	for _, m := range p {
		rate = m.Apply(rate)
	}
	return rate
}

// PipelineFor builds the pipeline for a selection: the vehicle multiplier,
// then the carpool discount when requested.
func PipelineFor(cfg config.Config, sel domain.Selection) ModifierPipeline {
	pipeline := ModifierPipeline{Multiplier(cfg.VehicleMultipliers[sel.VehicleType()])}
	if sel.Carpool() {
		pipeline = append(pipeline, Multiplier(cfg.CarpoolDiscount))
	}
	return pipeline
}

// PricingStrategy computes the base monthly rate for a selection. It is a
// pure function of the selection's permit type.
type PricingStrategy interface {
	ComputeMonthly(sel domain.Selection) decimal.Decimal
}

type residentStrategy struct {
	monthly decimal.Decimal
}

func (s residentStrategy) ComputeMonthly(domain.Selection) decimal.Decimal {
	return s.monthly
}

type commuterStrategy struct {
	monthly   decimal.Decimal
	reduction decimal.Decimal
}

// ComputeMonthly applies the commuter reduction unconditionally, before and
// independent of the modifier pipeline. A commuter selection with carpool
// therefore receives both discounts; that stacking is intentional.
func (s commuterStrategy) ComputeMonthly(domain.Selection) decimal.Decimal {
	return s.monthly.Mul(decimal.NewFromInt(1).Sub(s.reduction))
}

// StrategyFor selects the pricing strategy for a permit type. The variant
// set is closed, so this is a plain two-way dispatch.
func StrategyFor(cfg config.Config, permit domain.PermitType) PricingStrategy {
	if permit == domain.PermitTypeCommuter {
		return commuterStrategy{monthly: cfg.CommuterMonthly, reduction: cfg.CommuterReduction}
	}
	return residentStrategy{monthly: cfg.ResidentMonthly}
}

// Calculator derives subtotal, campus fee, and total for one selection.
// It is built per selection, since the pipeline depends on the selection's
// vehicle type and carpool flag. All methods are pure; rounding happens
// only at presentation time.
type Calculator struct {
	strategy PricingStrategy
	pipeline ModifierPipeline
	feeRate  decimal.Decimal
}

// NewCalculator builds a Calculator for the given selection.
func NewCalculator(cfg config.Config, sel domain.Selection) *Calculator {
	return &Calculator{
		strategy: StrategyFor(cfg, sel.PermitType()),
		pipeline: PipelineFor(cfg, sel),
		feeRate:  cfg.CampusFeeRate,
	}
}

// ComputeSubtotal returns the adjusted monthly rate times the number of
// months, at full precision.
func (c *Calculator) ComputeSubtotal(sel domain.Selection) decimal.Decimal {
	monthly := c.strategy.ComputeMonthly(sel)
	monthly = c.pipeline.ApplyAll(monthly)
	return monthly.Mul(decimal.NewFromInt(int64(sel.Months())))
}

// ComputeCampusFee returns the flat campus fee on a subtotal.
func (c *Calculator) ComputeCampusFee(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(c.feeRate)
}

// ComputeTotal returns the subtotal plus the campus fee.
func (c *Calculator) ComputeTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(c.ComputeCampusFee(subtotal))
}
