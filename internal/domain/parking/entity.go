package parking

import (
	"strings"

	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpeningHours is a daily window. Open == Close means the lot never closes,
// Open > Close means it closes after midnight.
type OpeningHours struct {
	Open  schedule.TimeOfDay
	Close schedule.TimeOfDay
}

func AlwaysOpen() OpeningHours {
	return OpeningHours{Open: schedule.Midnight, Close: schedule.Midnight}
}

func (h OpeningHours) IsAlwaysOpen() bool {
	return h.Open == h.Close || (h.Open == schedule.Midnight && h.Close == schedule.EndOfDay)
}

// weeklySlots repeats the daily window on every day of the week.
func (h OpeningHours) weeklySlots() ([]schedule.WeeklySlot, error) {
	slots := make([]schedule.WeeklySlot, 0, 7)
	for d := schedule.Monday; d <= schedule.Sunday; d++ {
		s, err := schedule.NewWeeklySlot(d, h.Open, h.Close)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

type Parking struct {
	id         uuid.UUID
	name       string
	capacity   int
	hourlyRate decimal.Decimal
	hours      OpeningHours
	slots      []schedule.WeeklySlot
}

func NewParking(id uuid.UUID, name string, capacity int, hourlyRate decimal.Decimal, hours OpeningHours) (*Parking, error) {
	if capacity <= 0 {
		return nil, errs.Wrapf(errs.ErrInvalidParking, "capacity must be positive, got %d", capacity)
	}
	if hourlyRate.IsNegative() {
		return nil, errs.Wrapf(errs.ErrInvalidParking, "hourly rate cannot be negative, got %s", hourlyRate)
	}

	p := &Parking{
		id:         id,
		name:       strings.TrimSpace(name),
		capacity:   capacity,
		hourlyRate: hourlyRate,
		hours:      hours,
	}
	if !hours.IsAlwaysOpen() {
		slots, err := hours.weeklySlots()
		if err != nil {
			return nil, errs.Wrapf(errs.ErrInvalidParking, "opening hours: %v", err)
		}
		p.slots = slots
	}
	return p, nil
}

func (p *Parking) ID() uuid.UUID               { return p.id }
func (p *Parking) Name() string                { return p.name }
func (p *Parking) Capacity() int               { return p.capacity }
func (p *Parking) HourlyRate() decimal.Decimal { return p.hourlyRate }
func (p *Parking) OpeningHours() OpeningHours  { return p.hours }

// IsOpenDuring reports whether every instant of iv falls inside opening hours.
func (p *Parking) IsOpenDuring(iv interval.Interval, cov *schedule.Coverage) bool {
	if p.hours.IsAlwaysOpen() {
		return true
	}
	return cov.CoversWeekly(p.slots, iv)
}
