package interval

import (
	"fmt"
	"time"

	"parking-engine/internal/pkg/errs"
)

// Interval is the half-open range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, errs.Wrapf(errs.ErrInvalidInterval,
			"end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{start: start, end: end}, nil
}

// MustNew is for literals in tests and fixtures.
func MustNew(start, end time.Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps reports whether the two intervals share at least one instant.
// Touching intervals ([a,b) and [b,c)) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Contains reports whether t lies within [start, end).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

// ContainsClosed reports whether t lies within [start, end].
func (iv Interval) ContainsClosed(t time.Time) bool {
	return !t.Before(iv.start) && !t.After(iv.end)
}

func (iv Interval) In(loc *time.Location) Interval {
	return Interval{start: iv.start.In(loc), end: iv.end.In(loc)}
}

// SplitByDay cuts the interval at every local midnight of loc. Each piece lies
// within one calendar day and the last one ends exactly at iv.End().
func (iv Interval) SplitByDay(loc *time.Location) []Interval {
	local := iv.In(loc)
	var pieces []Interval

	cur := local.start
	for cur.Before(local.end) {
		y, m, d := cur.Date()
		next := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		if next.After(local.end) {
			next = local.end
		}
		pieces = append(pieces, Interval{start: cur, end: next})
		cur = next
	}
	return pieces
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
