package subscription

import (
	"time"

	"github.com/muhammadheryan/rental-shop/model"
	"github.com/shopspring/decimal"
)

const (
	ReasonUpgrade          = "upgrade mid-cycle"
	ReasonUpgradePeriodEnd = "upgrade at period end - nothing left to prorate"
	ReasonDowngrade        = "downgrade - no charge"
	ReasonLateral          = "lateral change - no charge"
	ReasonDegeneratePeriod = "degenerate period - full amount"
)

// CalculateProration prices a plan change taking effect inside the current billing
// period. Only upgrades are charged, and only for the difference over the remaining
// time; downgrades never produce a refund here.
func CalculateProration(in model.ProrationInput) model.ProrationResult {
	period := in.CurrentPeriodEnd.Sub(in.CurrentPeriodStart)
	isUpgrade := in.NewAmount > in.CurrentAmount

	if period <= 0 {
		return model.ProrationResult{
			IsUpgrade:       isUpgrade,
			ChargeAmount:    in.NewAmount,
			ProratedNewCost: in.NewAmount,
			PeriodLength:    period,
			Reason:          ReasonDegeneratePeriod,
		}
	}

	remaining := in.CurrentPeriodEnd.Sub(in.EffectiveDate)
	if remaining < 0 {
		remaining = 0
	}

	res := model.ProrationResult{
		IsUpgrade:       isUpgrade,
		UnusedCredit:    prorate(in.CurrentAmount, remaining, period),
		ProratedNewCost: prorate(in.NewAmount, remaining, period),
		PeriodLength:    period,
		Remaining:       remaining,
	}

	switch {
	case isUpgrade:
		res.ChargeAmount = res.ProratedNewCost - res.UnusedCredit
		if res.ChargeAmount < 0 {
			res.ChargeAmount = 0
		}
		res.Reason = ReasonUpgrade
		if remaining == 0 {
			res.Reason = ReasonUpgradePeriodEnd
		}
	case in.NewAmount < in.CurrentAmount:
		res.Reason = ReasonDowngrade
	default:
		res.Reason = ReasonLateral
	}

	return res
}

// prorate returns amount * part / whole in minor units, rounded half away from zero.
func prorate(amount int64, part, whole time.Duration) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(int64(part))).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		IntPart()
}
