package promo

import (
	"fmt"
	"time"
)

// FailureReason classifies why a promo did not apply. These are results,
// not errors: checkout degrades to "no discount" and the UI shows an
// inline message.
type FailureReason string

const (
	ReasonNotFound      FailureReason = "not_found"
	ReasonExpired       FailureReason = "expired"
	ReasonMinimumNotMet FailureReason = "minimum_not_met"
)

// Result is the outcome of evaluating a promo against a pre-discount total.
// On success Valid is true and the totals are populated; on failure Reason
// and Message describe what went wrong.
type Result struct {
	Valid          bool
	OriginalTotal  float64
	DiscountAmount float64
	NewTotal       float64
	Reason         FailureReason
	Message        string
}

// Evaluate validates a promo against the given total at the given instant
// and computes the discounted total. A nil promo means the code matched
// nothing in the store. Validation failures come back as structured
// results; this boundary never returns an error, so re-evaluating the same
// inputs at the same instant always yields the same result.
//
// The total passed in must already include the vehicle multiplier: both the
// minimum-spend gate and percentage discounts key off the multiplied figure.
func Evaluate(p *Promo, total float64, now time.Time) Result {
	if p == nil {
		return Result{
			Valid:   false,
			Reason:  ReasonNotFound,
			Message: "Promo code not found",
		}
	}

	if !p.IsValidAt(now) {
		return Result{
			Valid:   false,
			Reason:  ReasonExpired,
			Message: "This promo code is not valid at this time",
		}
	}

	if p.minimumSpend > 0 && total < p.minimumSpend {
		return Result{
			Valid:   false,
			Reason:  ReasonMinimumNotMet,
			Message: fmt.Sprintf("Minimum purchase of £%s required for this promo", formatAmount(p.minimumSpend)),
		}
	}

	discount := p.discount.Amount(total)
	newTotal := total - discount
	if newTotal < 0 {
		newTotal = 0
	}

	return Result{
		Valid:          true,
		OriginalTotal:  total,
		DiscountAmount: discount,
		NewTotal:       newTotal,
		Message:        fmt.Sprintf("You saved £%.2f", discount),
	}
}

// formatAmount renders whole-pound amounts without trailing zeros, matching
// how minimum-spend values are shown to customers ("£50", not "£50.00").
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
