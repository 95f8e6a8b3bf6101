//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// March 2024: the 1st is a Friday.
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func span(fromDay, fromHour, fromMin, toDay, toHour, toMin int) interval.Interval {
	return interval.MustNew(at(fromDay, fromHour, fromMin), at(toDay, toHour, toMin))
}

func TestWeekday(t *testing.T) {
	t.Run("ISO numbering from time", func(t *testing.T) {
		assert.Equal(t, schedule.Friday, schedule.FromTime(at(1, 12, 0)))
		assert.Equal(t, schedule.Saturday, schedule.FromTime(at(2, 12, 0)))
		assert.Equal(t, schedule.Sunday, schedule.FromTime(at(3, 12, 0)))
		assert.Equal(t, schedule.Monday, schedule.FromTime(at(4, 12, 0)))
		assert.Equal(t, schedule.Weekday(7), schedule.Sunday)
		assert.Equal(t, schedule.Weekday(1), schedule.Monday)
	})

	t.Run("next wraps", func(t *testing.T) {
		assert.Equal(t, schedule.Saturday, schedule.Friday.Next())
		assert.Equal(t, schedule.Monday, schedule.Sunday.Next())
	})

	t.Run("range", func(t *testing.T) {
		_, err := schedule.NewWeekday(0)
		assert.ErrorIs(t, err, errs.ErrInvalidSlot)
		_, err = schedule.NewWeekday(8)
		assert.ErrorIs(t, err, errs.ErrInvalidSlot)
		d, err := schedule.NewWeekday(3)
		require.NoError(t, err)
		assert.Equal(t, "Wednesday", d.String())
		assert.Equal(t, "Sunday", schedule.Sunday.String())
	})
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    schedule.TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: schedule.Midnight},
		{in: "08:30", want: 8*3600 + 30*60},
		{in: "23:59:59", want: 86399},
		{in: "24:00", want: schedule.EndOfDay},
		{in: "24:01", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "8:30", wantErr: true},
		{in: "18:0x", wantErr: true},
		{in: "", wantErr: true},
		{in: "12", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, "18:00", schedule.MustParseTimeOfDay("18:00").String())
	assert.Equal(t, "23:59:59", schedule.MustParseTimeOfDay("23:59:59").String())
}

func TestNewWeeklySlot(t *testing.T) {
	cases := []struct {
		name  string
		day   int
		start string
		end   string
		errIs error
	}{
		{name: "plain window", day: 3, start: "09:00", end: "18:00"},
		{name: "until midnight", day: 3, start: "18:00", end: "24:00"},
		{name: "crossing midnight", day: 5, start: "18:00", end: "08:00"},
		{name: "day zero", day: 0, start: "09:00", end: "18:00", errIs: errs.ErrInvalidSlot},
		{name: "day eight", day: 8, start: "09:00", end: "18:00", errIs: errs.ErrInvalidSlot},
		{name: "empty window", day: 1, start: "09:00", end: "09:00", errIs: errs.ErrInvalidSlot},
		{name: "start at 24:00", day: 1, start: "24:00", end: "08:00", errIs: errs.ErrInvalidSlot},
		{name: "malformed time", day: 1, start: "9h", end: "18:00", errIs: errs.ErrInvalidSlot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := schedule.ParseWeeklySlot(tc.day, tc.start, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, schedule.Weekday(tc.day), slot.Day())
		})
	}

	assert.True(t, schedule.MustParseWeeklySlot(5, "18:00", "08:00").CrossesMidnight())
	assert.False(t, schedule.MustParseWeeklySlot(5, "08:00", "18:00").CrossesMidnight())
}

func TestSegments(t *testing.T) {
	cov := schedule.NewCoverage(time.UTC)

	t.Run("cut at midnight", func(t *testing.T) {
		got := cov.Segments(span(1, 20, 0, 2, 5, 0))
		want := []schedule.DaySegment{
			{Day: schedule.Friday, Date: schedule.NewDate(2024, time.March, 1), Start: schedule.MustParseTimeOfDay("20:00"), End: schedule.EndOfDay},
			{Day: schedule.Saturday, Date: schedule.NewDate(2024, time.March, 2), Start: schedule.Midnight, End: schedule.MustParseTimeOfDay("05:00")},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(schedule.Date{})); diff != "" {
			t.Errorf("segments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fractional end rounds up to the next second", func(t *testing.T) {
		got := cov.Segments(interval.MustNew(at(6, 17, 0), at(6, 18, 0).Add(time.Nanosecond)))
		require.Len(t, got, 1)
		assert.Equal(t, schedule.MustParseTimeOfDay("17:00"), got[0].Start)
		assert.Equal(t, schedule.MustParseTimeOfDay("18:00:01"), got[0].End)
	})

	t.Run("local zone decides the day", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		// Friday 20:00Z is Saturday 05:00 in JST
		got := schedule.NewCoverage(tokyo).Segments(span(1, 20, 0, 1, 21, 0))
		require.Len(t, got, 1)
		assert.Equal(t, schedule.Saturday, got[0].Day)
		assert.Equal(t, schedule.MustParseTimeOfDay("05:00"), got[0].Start)
	})
}

func TestSegmentCoveredPlainSlot(t *testing.T) {
	slots := []schedule.WeeklySlot{schedule.MustParseWeeklySlot(3, "09:00", "18:00")}
	cov := schedule.NewCoverage(time.UTC)

	cases := []struct {
		name string
		iv   interval.Interval
		want bool
	}{
		{"whole window on wednesday", span(6, 9, 0, 6, 18, 0), true},
		{"inside on wednesday", span(6, 10, 0, 6, 12, 0), true},
		{"starts too early", span(6, 8, 59, 6, 10, 0), false},
		{"ends too late", span(6, 17, 0, 6, 18, 1), false},
		{"ends a fraction of a second late", interval.MustNew(at(6, 17, 0), at(6, 18, 0).Add(900*time.Millisecond)), false},
		{"starts mid-second inside", interval.MustNew(at(6, 9, 0).Add(300*time.Millisecond), at(6, 18, 0)), true},
		{"tuesday", span(5, 10, 0, 5, 12, 0), false},
		{"thursday", span(7, 10, 0, 7, 12, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cov.CoversWeekly(slots, tc.iv))
		})
	}
}

func TestSegmentCoveredMidnightSlot(t *testing.T) {
	slots := []schedule.WeeklySlot{schedule.MustParseWeeklySlot(5, "18:00", "08:00")}
	cov := schedule.NewCoverage(time.UTC)

	cases := []struct {
		name string
		iv   interval.Interval
		want bool
	}{
		{"friday evening", span(1, 20, 0, 1, 23, 0), true},
		{"friday evening to midnight", span(1, 18, 0, 2, 0, 0), true},
		{"saturday night", span(2, 1, 0, 2, 5, 0), true},
		{"saturday until 08:00", span(2, 0, 0, 2, 8, 0), true},
		{"across the night", span(1, 20, 0, 2, 5, 0), true},
		{"friday starting before 18:00", span(1, 17, 0, 1, 19, 0), false},
		{"saturday past 08:00", span(2, 7, 0, 2, 9, 0), false},
		{"across the night past 08:00", span(1, 20, 0, 2, 9, 0), false},
		{"thursday evening", span(7, 20, 0, 7, 23, 0), false},
		{"saturday evening", span(2, 20, 0, 2, 23, 0), false},
		{"sunday night", span(3, 1, 0, 3, 5, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cov.CoversWeekly(slots, tc.iv))
		})
	}

	t.Run("direct segments", func(t *testing.T) {
		fri := schedule.DaySegment{Day: schedule.Friday, Start: schedule.MustParseTimeOfDay("18:00"), End: schedule.MustParseTimeOfDay("23:59:59")}
		sat := schedule.DaySegment{Day: schedule.Saturday, Start: schedule.Midnight, End: schedule.MustParseTimeOfDay("08:00")}
		assert.True(t, schedule.SegmentCovered(fri, slots))
		assert.True(t, schedule.SegmentCovered(sat, slots))
		assert.False(t, schedule.SegmentCovered(schedule.DaySegment{Day: schedule.Saturday, Start: schedule.Midnight, End: schedule.MustParseTimeOfDay("08:00:01")}, slots))
		assert.False(t, schedule.SegmentCovered(fri, nil))
	})
}

func TestSundayWrapsToMonday(t *testing.T) {
	slots := []schedule.WeeklySlot{schedule.MustParseWeeklySlot(7, "22:00", "06:00")}
	cov := schedule.NewCoverage(time.UTC)

	assert.True(t, cov.CoversWeekly(slots, span(3, 22, 0, 4, 6, 0)))
	assert.True(t, cov.CoversWeekly(slots, span(4, 1, 0, 4, 2, 0)))
	assert.False(t, cov.CoversWeekly(slots, span(5, 1, 0, 5, 2, 0)))
}

func TestCoversMultiDay(t *testing.T) {
	var fullWeek []schedule.WeeklySlot
	for d := 1; d <= 7; d++ {
		fullWeek = append(fullWeek, schedule.MustParseWeeklySlot(d, "00:00", "24:00"))
	}
	cov := schedule.NewCoverage(time.UTC)

	assert.True(t, cov.CoversWeekly(fullWeek, span(1, 10, 0, 4, 10, 0)))
	assert.False(t, cov.CoversWeekly(fullWeek[:6], span(1, 10, 0, 4, 10, 0)), "sunday missing")
}

func TestSubscriptionCovers(t *testing.T) {
	userID, parkingID := uuid.New(), uuid.New()
	dates, err := schedule.NewDateRange(schedule.NewDate(2024, time.March, 1), schedule.NewDate(2024, time.March, 1))
	require.NoError(t, err)
	sub := schedule.NewSubscription(uuid.New(), userID, parkingID, dates, []schedule.WeeklySlot{
		schedule.MustParseWeeklySlot(5, "18:00", "08:00"),
	})
	cov := schedule.NewCoverage(time.UTC)

	t.Run("inside date range", func(t *testing.T) {
		assert.True(t, cov.Covers(sub, span(1, 20, 0, 1, 23, 0)))
		assert.True(t, cov.Covers(sub, span(1, 20, 0, 2, 0, 0)))
	})

	t.Run("day after the range", func(t *testing.T) {
		assert.False(t, cov.Covers(sub, span(2, 1, 0, 2, 5, 0)))
		assert.False(t, cov.Covers(sub, span(1, 20, 0, 2, 5, 0)))
	})

	t.Run("nil subscription", func(t *testing.T) {
		assert.False(t, cov.Covers(nil, span(1, 20, 0, 1, 23, 0)))
	})

	t.Run("applicable subscription only", func(t *testing.T) {
		other := schedule.NewSubscription(uuid.New(), uuid.New(), parkingID, dates, sub.Slots())
		subs := []*schedule.Subscription{other, sub}
		iv := span(1, 20, 0, 1, 23, 0)

		assert.Equal(t, sub, cov.AnyCovers(subs, userID, parkingID, iv))
		assert.Nil(t, cov.AnyCovers(subs, userID, uuid.New(), iv))
		assert.Nil(t, cov.AnyCovers([]*schedule.Subscription{other}, userID, parkingID, iv))
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := schedule.NewDateRange(schedule.NewDate(2024, time.March, 2), schedule.NewDate(2024, time.March, 1))
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestDate(t *testing.T) {
	d, err := schedule.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.True(t, d.Before(schedule.NewDate(2024, time.March, 1)))
	assert.True(t, schedule.NewDate(2024, time.March, 1).After(d))
	assert.Equal(t, schedule.NewDate(2024, time.March, 1), schedule.NewDate(2024, time.February, 30))

	_, err = schedule.ParseDate("2024-13-01")
	assert.Error(t, err)
}
