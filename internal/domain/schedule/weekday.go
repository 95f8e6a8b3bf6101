package schedule

import (
	"fmt"
	"time"

	"parking-engine/internal/pkg/errs"
)

// Weekday uses ISO numbering: 1 is Monday, 7 is Sunday. FromTime is the only
// place where the standard library's Sunday-first numbering is converted.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func FromTime(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

func NewWeekday(n int) (Weekday, error) {
	d := Weekday(n)
	if !d.IsValid() {
		return 0, errs.Wrapf(errs.ErrInvalidSlot, "day of week %d out of range 1..7", n)
	}
	return d, nil
}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// Next wraps Sunday to Monday.
func (d Weekday) Next() Weekday {
	if d == Sunday {
		return Monday
	}
	return d + 1
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	if d == Sunday {
		return time.Sunday.String()
	}
	return time.Weekday(d).String()
}
