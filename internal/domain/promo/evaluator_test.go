//go:build unit

package promo_test

import (
	"testing"
	"time"

	"parkcompare/internal/domain/promo"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activePromo(t *testing.T, dtype promo.DiscountType, value, cap, minimumSpend float64) *promo.Promo {
	t.Helper()
	discount, err := promo.NewDiscount(dtype, value, cap)
	require.NoError(t, err)
	p, err := promo.NewPromo(
		uuid.New(),
		"SUMMER10",
		evalNow.AddDate(0, -1, 0),
		evalNow.AddDate(0, 1, 0),
		minimumSpend,
		discount,
	)
	require.NoError(t, err)
	return p
}

func TestEvaluatePercentage(t *testing.T) {
	p := activePromo(t, promo.DiscountPercentage, 10, 0, 0)

	res := promo.Evaluate(p, 120, evalNow)

	assert.True(t, res.Valid)
	assert.InDelta(t, 120, res.OriginalTotal, 1e-9)
	assert.InDelta(t, 12, res.DiscountAmount, 1e-9)
	assert.InDelta(t, 108, res.NewTotal, 1e-9)
	assert.Equal(t, "You saved £12.00", res.Message)
}

func TestEvaluateFixed(t *testing.T) {
	p := activePromo(t, promo.DiscountFixed, 15, 0, 0)

	res := promo.Evaluate(p, 60, evalNow)

	assert.True(t, res.Valid)
	assert.InDelta(t, 15, res.DiscountAmount, 1e-9)
	assert.InDelta(t, 45, res.NewTotal, 1e-9)
}

func TestEvaluateCap(t *testing.T) {
	tests := []struct {
		name         string
		dtype        promo.DiscountType
		value        float64
		cap          float64
		total        float64
		wantDiscount float64
	}{
		{name: "percentage below cap applies in full", dtype: promo.DiscountPercentage, value: 10, cap: 20, total: 100, wantDiscount: 10},
		{name: "percentage above cap is clamped", dtype: promo.DiscountPercentage, value: 25, cap: 20, total: 200, wantDiscount: 20},
		{name: "fixed above cap is clamped", dtype: promo.DiscountFixed, value: 50, cap: 30, total: 100, wantDiscount: 30},
		{name: "zero cap means uncapped", dtype: promo.DiscountPercentage, value: 50, cap: 0, total: 200, wantDiscount: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := activePromo(t, tt.dtype, tt.value, tt.cap, 0)
			res := promo.Evaluate(p, tt.total, evalNow)
			require.True(t, res.Valid)
			assert.InDelta(t, tt.wantDiscount, res.DiscountAmount, 1e-9)
		})
	}
}

func TestEvaluateFloorsAtZero(t *testing.T) {
	// A fixed discount larger than the total never produces a negative price.
	p := activePromo(t, promo.DiscountFixed, 100, 0, 0)

	res := promo.Evaluate(p, 40, evalNow)

	require.True(t, res.Valid)
	assert.InDelta(t, 100, res.DiscountAmount, 1e-9)
	assert.InDelta(t, 0, res.NewTotal, 1e-9)
}

func TestEvaluateNotFound(t *testing.T) {
	res := promo.Evaluate(nil, 120, evalNow)

	assert.False(t, res.Valid)
	assert.Equal(t, promo.ReasonNotFound, res.Reason)
	assert.Equal(t, "Promo code not found", res.Message)
}

func TestEvaluateWindow(t *testing.T) {
	p := activePromo(t, promo.DiscountPercentage, 10, 0, 0)

	tests := []struct {
		name      string
		at        time.Time
		wantValid bool
	}{
		{name: "inside window", at: evalNow, wantValid: true},
		{name: "exactly at validFrom", at: p.ValidFrom(), wantValid: true},
		{name: "exactly at validTo", at: p.ValidTo(), wantValid: true},
		{name: "before window", at: p.ValidFrom().Add(-time.Second), wantValid: false},
		{name: "after window", at: p.ValidTo().Add(time.Second), wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := promo.Evaluate(p, 120, tt.at)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, promo.ReasonExpired, res.Reason)
				assert.Equal(t, "This promo code is not valid at this time", res.Message)
			}
		})
	}
}

func TestEvaluateMinimumSpend(t *testing.T) {
	p := activePromo(t, promo.DiscountPercentage, 10, 0, 50)

	t.Run("below minimum", func(t *testing.T) {
		res := promo.Evaluate(p, 49.99, evalNow)
		assert.False(t, res.Valid)
		assert.Equal(t, promo.ReasonMinimumNotMet, res.Reason)
		assert.Equal(t, "Minimum purchase of £50 required for this promo", res.Message)
	})

	t.Run("exactly at minimum", func(t *testing.T) {
		res := promo.Evaluate(p, 50, evalNow)
		assert.True(t, res.Valid)
	})

	t.Run("fractional minimum keeps its pence", func(t *testing.T) {
		frac := activePromo(t, promo.DiscountPercentage, 10, 0, 49.5)
		res := promo.Evaluate(frac, 10, evalNow)
		assert.Equal(t, "Minimum purchase of £49.50 required for this promo", res.Message)
	})
}

func TestEvaluateMinimumSeesMultipliedTotal(t *testing.T) {
	// A £50 minimum fails on a £40 single-vehicle total but passes once a
	// second vehicle doubles it to £80.
	p := activePromo(t, promo.DiscountPercentage, 10, 0, 50)

	assert.False(t, promo.Evaluate(p, 40, evalNow).Valid)
	assert.True(t, promo.Evaluate(p, 80, evalNow).Valid)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	p := activePromo(t, promo.DiscountPercentage, 10, 0, 0)

	first := promo.Evaluate(p, 120, evalNow)
	second := promo.Evaluate(p, 120, evalNow)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}

func TestNewCode(t *testing.T) {
	code, err := promo.NewCode("  summer10 ")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", code.String())
	assert.True(t, code.Matches("Summer10"))

	_, err = promo.NewCode("   ")
	assert.ErrorIs(t, err, promo.ErrEmptyCode)
}
