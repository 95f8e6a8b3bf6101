//go:build unit

package billing_test

import (
	"testing"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/interval"
	"parking-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(hour, minute, second int) time.Time {
	return time.Date(2024, time.May, 10, hour, minute, second, 0, time.UTC)
}

func newCalculator(t *testing.T, slot int, multiplier string) *billing.Calculator {
	t.Helper()
	calc, err := billing.NewCalculator(billing.Config{
		SlotMinutes:       slot,
		PenaltyMultiplier: decimal.RequireFromString(multiplier),
	})
	require.NoError(t, err)
	return calc
}

func TestNewCalculator(t *testing.T) {
	cases := []struct {
		name  string
		cfg   billing.Config
		errIs error
	}{
		{name: "valid", cfg: billing.Config{SlotMinutes: 15, PenaltyMultiplier: decimal.NewFromInt(2)}},
		{name: "multiplier of one disables penalty", cfg: billing.Config{SlotMinutes: 1, PenaltyMultiplier: decimal.NewFromInt(1)}},
		{name: "zero slot", cfg: billing.Config{SlotMinutes: 0, PenaltyMultiplier: decimal.NewFromInt(2)}, errIs: errs.ErrInvalidConfig},
		{name: "negative slot", cfg: billing.Config{SlotMinutes: -5, PenaltyMultiplier: decimal.NewFromInt(2)}, errIs: errs.ErrInvalidConfig},
		{name: "multiplier below one", cfg: billing.Config{SlotMinutes: 15, PenaltyMultiplier: decimal.RequireFromString("0.5")}, errIs: errs.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calc, err := billing.NewCalculator(tc.cfg)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, calc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg.SlotMinutes, calc.SlotMinutes())
			assert.True(t, tc.cfg.PenaltyMultiplier.Equal(calc.PenaltyMultiplier()))
		})
	}
}

func TestBilledMinutes(t *testing.T) {
	calc := newCalculator(t, 15, "2")

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"one minute rounds up", clockAt(10, 0, 0), clockAt(10, 1, 0), 15},
		{"exact slot stays", clockAt(10, 0, 0), clockAt(10, 15, 0), 15},
		{"one second over", clockAt(10, 0, 0), clockAt(10, 15, 1), 30},
		{"negative duration", clockAt(10, 0, 0), clockAt(9, 59, 0), 0},
		{"zero duration", clockAt(10, 0, 0), clockAt(10, 0, 0), 0},
		{"two hours", clockAt(10, 0, 0), clockAt(12, 0, 0), 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calc.BilledMinutes(tc.start, tc.end))
		})
	}

	t.Run("monotonic non-negative multiples", func(t *testing.T) {
		start := clockAt(8, 0, 0)
		prev := 0
		for sec := -120; sec <= 4*60*60; sec += 37 {
			got := calc.BilledMinutes(start, start.Add(time.Duration(sec)*time.Second))
			assert.GreaterOrEqual(t, got, prev)
			assert.GreaterOrEqual(t, got, 0)
			assert.Zero(t, got%15)
			prev = got
		}
	})
}

func TestAmountForMinutes(t *testing.T) {
	calc := newCalculator(t, 15, "2")
	rate := decimal.NewFromInt(10)

	assert.Equal(t, "12.50", calc.AmountForMinutes(75, rate).StringFixed(2))
	assert.Equal(t, "0.00", calc.AmountForMinutes(0, rate).StringFixed(2))
	assert.Equal(t, "0.00", calc.AmountForMinutes(90, decimal.Zero).StringFixed(2))
	// 7 * 3.33 / 60 = 0.3885
	assert.Equal(t, "0.39", calc.AmountForMinutes(7, decimal.RequireFromString("3.33")).StringFixed(2))

	t.Run("linear within one cent", func(t *testing.T) {
		cent := decimal.RequireFromString("0.01")
		for _, r := range []string{"1", "2.75", "3.33", "7.99", "12.40"} {
			rate := decimal.RequireFromString(r)
			for m := 1; m <= 600; m += 7 {
				single := calc.AmountForMinutes(m, rate)
				double := calc.AmountForMinutes(2*m, rate)
				diff := double.Sub(single.Mul(decimal.NewFromInt(2))).Abs()
				assert.True(t, diff.LessThanOrEqual(cent), "rate %s minutes %d diff %s", r, m, diff)
			}
		}
	})
}

func TestCompute(t *testing.T) {
	rate := decimal.NewFromInt(10)

	t.Run("exit before reserved end has no penalty", func(t *testing.T) {
		calc := newCalculator(t, 15, "2")
		res := calc.Compute(clockAt(10, 0, 0), clockAt(10, 50, 0), clockAt(11, 0, 0), rate)

		assert.Equal(t, 60, res.BilledMinutes)
		assert.Equal(t, "10.00", res.BaseAmount.StringFixed(2))
		assert.True(t, res.PenaltyAmount.IsZero())
		assert.True(t, res.TotalAmount.Equal(res.BaseAmount))
		assert.False(t, res.HasOvertime())
	})

	t.Run("exit exactly at reserved end has no penalty", func(t *testing.T) {
		calc := newCalculator(t, 15, "3")
		res := calc.Compute(clockAt(10, 0, 0), clockAt(11, 0, 0), clockAt(11, 0, 0), rate)
		assert.True(t, res.PenaltyAmount.IsZero())
		assert.Equal(t, "10.00", res.TotalAmount.StringFixed(2))
	})

	t.Run("double rate overtime", func(t *testing.T) {
		calc := newCalculator(t, 15, "2.0")
		res := calc.Compute(clockAt(10, 0, 0), clockAt(11, 1, 0), clockAt(11, 0, 0), rate)

		assert.Equal(t, 75, res.BilledMinutes)
		assert.Equal(t, 15, res.OvertimeMinutes)
		assert.Equal(t, "12.50", res.BaseAmount.StringFixed(2))
		assert.Equal(t, "2.50", res.PenaltyAmount.StringFixed(2))
		assert.Equal(t, "15.00", res.TotalAmount.StringFixed(2))
		assert.True(t, res.HasOvertime())
	})

	t.Run("triple rate overtime", func(t *testing.T) {
		calc := newCalculator(t, 15, "3.0")
		res := calc.Compute(clockAt(10, 0, 0), clockAt(11, 16, 0), clockAt(11, 0, 0), rate)

		assert.Equal(t, 90, res.BilledMinutes)
		assert.Equal(t, 30, res.OvertimeMinutes)
		assert.Equal(t, "15.00", res.BaseAmount.StringFixed(2))
		assert.Equal(t, "10.00", res.PenaltyAmount.StringFixed(2))
		assert.Equal(t, "25.00", res.TotalAmount.StringFixed(2))
	})

	t.Run("overtime rounded independently of total", func(t *testing.T) {
		calc := newCalculator(t, 15, "2")
		// entered late: 10:10 -> 11:05 is 55 min (60 billed), overtime 5 min (15 billed)
		res := calc.Compute(clockAt(10, 10, 0), clockAt(11, 5, 0), clockAt(11, 0, 0), rate)
		assert.Equal(t, 60, res.BilledMinutes)
		assert.Equal(t, 15, res.OvertimeMinutes)
		assert.Equal(t, "10.00", res.BaseAmount.StringFixed(2))
		assert.Equal(t, "2.50", res.PenaltyAmount.StringFixed(2))
	})

	t.Run("no penalty whenever exit is not after end", func(t *testing.T) {
		calc := newCalculator(t, 10, "4")
		end := clockAt(12, 0, 0)
		for m := 0; m <= 120; m += 9 {
			exit := clockAt(10, 0, 0).Add(time.Duration(m) * time.Minute)
			res := calc.Compute(clockAt(10, 0, 0), exit, end, rate)
			assert.True(t, res.PenaltyAmount.IsZero())
			assert.True(t, res.TotalAmount.Equal(res.BaseAmount))
		}
	})
}

func TestQuote(t *testing.T) {
	calc := newCalculator(t, 15, "2")
	iv := interval.MustNew(clockAt(9, 0, 0), clockAt(10, 40, 0))
	// 100 min -> 105 billed -> 17.50 at 10/h
	assert.Equal(t, "17.50", calc.Quote(iv, decimal.NewFromInt(10)).StringFixed(2))
}
