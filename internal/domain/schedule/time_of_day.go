package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"parking-engine/internal/pkg/errs"
)

// TimeOfDay is an offset from local midnight with one-second resolution.
// EndOfDay ("24:00") is accepted as an upper bound only.
type TimeOfDay int

const (
	Midnight  TimeOfDay = 0
	EndOfDay  TimeOfDay = 24 * 60 * 60
	secPerMin           = 60
	secPerHr            = 60 * 60
)

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour == 24 && minute == 0 && second == 0 {
		return EndOfDay, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, errs.Wrapf(errs.ErrInvalidSlot, "time of day %02d:%02d:%02d out of range", hour, minute, second)
	}
	return TimeOfDay(hour*secPerHr + minute*secPerMin + second), nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, errs.Wrapf(errs.ErrInvalidSlot, "invalid time of day %q", s)
	}
	fields := [3]int{}
	for i, p := range parts {
		if len(p) != 2 {
			return 0, errs.Wrapf(errs.ErrInvalidSlot, "invalid time of day %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, errs.Wrapf(errs.ErrInvalidSlot, "invalid time of day %q", s)
		}
		fields[i] = n
	}
	return NewTimeOfDay(fields[0], fields[1], fields[2])
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf truncates t to the second.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*secPerHr + t.Minute()*secPerMin + t.Second())
}

// ceilTimeOfDayOf rounds a fractional second up, so an end bound never
// lands before the instant it stands for.
func ceilTimeOfDayOf(t time.Time) TimeOfDay {
	tod := TimeOfDayOf(t)
	if t.Nanosecond() != 0 {
		tod++
	}
	return tod
}

func (t TimeOfDay) String() string {
	h := int(t) / secPerHr
	m := (int(t) % secPerHr) / secPerMin
	s := int(t) % secPerMin
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
