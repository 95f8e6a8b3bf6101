package billing

import (
	"time"

	"parking-engine/internal/domain/interval"
	"parking-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

var minutesPerHour = decimal.NewFromInt(60)

type Config struct {
	// SlotMinutes is the rounding granularity of charged durations.
	SlotMinutes int
	// PenaltyMultiplier is the rate applied to overtime, 2 meaning double.
	PenaltyMultiplier decimal.Decimal
}

func (c Config) Validate() error {
	if c.SlotMinutes <= 0 {
		return errs.Wrapf(errs.ErrInvalidConfig, "slot minutes must be positive, got %d", c.SlotMinutes)
	}
	if c.PenaltyMultiplier.LessThan(decimal.NewFromInt(1)) {
		return errs.Wrapf(errs.ErrInvalidConfig, "penalty multiplier must be at least 1, got %s", c.PenaltyMultiplier)
	}
	return nil
}

type Result struct {
	BilledMinutes   int
	OvertimeMinutes int
	BaseAmount      decimal.Decimal
	PenaltyAmount   decimal.Decimal
	TotalAmount     decimal.Decimal
}

func (r Result) HasOvertime() bool {
	return r.OvertimeMinutes > 0
}

// Calculator is stateless once built and safe for concurrent use.
type Calculator struct {
	slot       time.Duration
	slotMin    int
	surcharge  decimal.Decimal
	multiplier decimal.Decimal
}

func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		slot:       time.Duration(cfg.SlotMinutes) * time.Minute,
		slotMin:    cfg.SlotMinutes,
		surcharge:  cfg.PenaltyMultiplier.Sub(decimal.NewFromInt(1)),
		multiplier: cfg.PenaltyMultiplier,
	}, nil
}

func (c *Calculator) SlotMinutes() int {
	return c.slotMin
}

func (c *Calculator) PenaltyMultiplier() decimal.Decimal {
	return c.multiplier
}

// BilledMinutes rounds end-start up to the next multiple of the slot.
// Exact multiples are kept and non-positive durations bill nothing.
func (c *Calculator) BilledMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	slots := (d + c.slot - 1) / c.slot
	return int(slots) * c.slotMin
}

func (c *Calculator) AmountForMinutes(minutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).
		Mul(hourlyRate).
		Div(minutesPerHour).
		Round(amountPlaces)
}

// Compute bills a closed session. Overtime is rounded on its own, not derived
// from the total, so both roundings may disagree by up to one slot.
func (c *Calculator) Compute(enteredAt, exitedAt, reservedEndAt time.Time, hourlyRate decimal.Decimal) Result {
	total := c.BilledMinutes(enteredAt, exitedAt)
	base := c.AmountForMinutes(total, hourlyRate)

	res := Result{
		BilledMinutes: total,
		BaseAmount:    base,
		PenaltyAmount: decimal.Zero,
		TotalAmount:   base,
	}
	if !exitedAt.After(reservedEndAt) {
		return res
	}

	overtime := c.BilledMinutes(reservedEndAt, exitedAt)
	overtimeAmount := c.AmountForMinutes(overtime, hourlyRate)
	// surcharge on top of the overtime already included in base
	penalty := overtimeAmount.Mul(c.surcharge).Round(amountPlaces)

	res.OvertimeMinutes = overtime
	res.PenaltyAmount = penalty
	res.TotalAmount = base.Add(penalty)
	return res
}

// Quote is the amount promised at booking time for the whole interval.
func (c *Calculator) Quote(iv interval.Interval, hourlyRate decimal.Decimal) decimal.Decimal {
	return c.AmountForMinutes(c.BilledMinutes(iv.Start(), iv.End()), hourlyRate)
}
