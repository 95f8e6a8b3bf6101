package schedule

import (
	"fmt"

	"parking-engine/internal/pkg/errs"
)

// WeeklySlot is a recurring window. Start > End means it crosses midnight,
// e.g. Friday 18:00 to Saturday 08:00.
type WeeklySlot struct {
	day   Weekday
	start TimeOfDay
	end   TimeOfDay
}

func NewWeeklySlot(day Weekday, start, end TimeOfDay) (WeeklySlot, error) {
	if !day.IsValid() {
		return WeeklySlot{}, errs.Wrapf(errs.ErrInvalidSlot, "day of week %d", int(day))
	}
	if start < Midnight || start >= EndOfDay || end < Midnight || end > EndOfDay {
		return WeeklySlot{}, errs.Wrapf(errs.ErrInvalidSlot, "bounds %s-%s", start, end)
	}
	if start == end {
		return WeeklySlot{}, errs.Wrapf(errs.ErrInvalidSlot, "empty window at %s", start)
	}
	return WeeklySlot{day: day, start: start, end: end}, nil
}

// ParseWeeklySlot builds a slot from an ISO day number and "HH:MM" bounds.
func ParseWeeklySlot(day int, start, end string) (WeeklySlot, error) {
	d, err := NewWeekday(day)
	if err != nil {
		return WeeklySlot{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return WeeklySlot{}, errs.Wrap(err, "slot start")
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return WeeklySlot{}, errs.Wrap(err, "slot end")
	}
	return NewWeeklySlot(d, s, e)
}

func MustParseWeeklySlot(day int, start, end string) WeeklySlot {
	s, err := ParseWeeklySlot(day, start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (s WeeklySlot) Day() Weekday     { return s.day }
func (s WeeklySlot) Start() TimeOfDay { return s.start }
func (s WeeklySlot) End() TimeOfDay   { return s.end }

func (s WeeklySlot) CrossesMidnight() bool {
	return s.start > s.end
}

// Covers reports whether the slot alone covers seg.
func (s WeeklySlot) Covers(seg DaySegment) bool {
	if !s.CrossesMidnight() {
		return s.day == seg.Day && seg.Start >= s.start && seg.End <= s.end
	}
	// evening half, a segment never extends past its own midnight
	if s.day == seg.Day && seg.Start >= s.start {
		return true
	}
	// morning half on the following day
	return seg.Day == s.day.Next() && seg.End <= s.end
}

func (s WeeklySlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.day, s.start, s.end)
}
