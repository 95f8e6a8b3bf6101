package schedule

import (
	"time"

	"parking-engine/internal/domain/interval"

	"github.com/google/uuid"
)

// DaySegment is a piece of an interval lying within one calendar day.
// End is EndOfDay when the piece runs up to the next midnight.
type DaySegment struct {
	Day   Weekday
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

// Coverage evaluates weekly slots against intervals in one local zone.
type Coverage struct {
	loc *time.Location
}

func NewCoverage(loc *time.Location) *Coverage {
	if loc == nil {
		loc = time.UTC
	}
	return &Coverage{loc: loc}
}

func (c *Coverage) Location() *time.Location {
	return c.loc
}

// Segments cuts iv at local midnights.
func (c *Coverage) Segments(iv interval.Interval) []DaySegment {
	pieces := iv.SplitByDay(c.loc)
	segs := make([]DaySegment, 0, len(pieces))
	for _, p := range pieces {
		start, end := p.Start(), p.End()
		endTod := ceilTimeOfDayOf(end)
		if DateOf(end) != DateOf(start) {
			endTod = EndOfDay
		}
		segs = append(segs, DaySegment{
			Day:   FromTime(start),
			Date:  DateOf(start),
			Start: TimeOfDayOf(start),
			End:   endTod,
		})
	}
	return segs
}

// Covers reports whether sub's slots cover every instant of iv and every
// day iv touches lies within the subscription's date range.
func (c *Coverage) Covers(sub *Subscription, iv interval.Interval) bool {
	if sub == nil {
		return false
	}
	segs := c.Segments(iv)
	for _, seg := range segs {
		if !sub.dates.Contains(seg.Date) {
			return false
		}
	}
	return allCovered(segs, sub.slots)
}

// CoversWeekly is Covers without a date range.
func (c *Coverage) CoversWeekly(slots []WeeklySlot, iv interval.Interval) bool {
	return allCovered(c.Segments(iv), slots)
}

// AnyCovers returns the first subscription applicable to the user and lot
// that covers iv, or nil.
func (c *Coverage) AnyCovers(subs []*Subscription, userID, parkingID uuid.UUID, iv interval.Interval) *Subscription {
	for _, sub := range subs {
		if sub != nil && sub.AppliesTo(userID, parkingID) && c.Covers(sub, iv) {
			return sub
		}
	}
	return nil
}

// SegmentCovered reports whether at least one slot covers seg.
func SegmentCovered(seg DaySegment, slots []WeeklySlot) bool {
	for _, s := range slots {
		if s.Covers(seg) {
			return true
		}
	}
	return false
}

func allCovered(segs []DaySegment, slots []WeeklySlot) bool {
	if len(segs) == 0 {
		return false
	}
	for _, seg := range segs {
		if !SegmentCovered(seg, slots) {
			return false
		}
	}
	return true
}
