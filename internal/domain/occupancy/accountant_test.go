//go:build unit

package occupancy_test

import (
	"testing"

	"parking-engine/internal/domain/occupancy"

	"github.com/stretchr/testify/assert"
)

func TestRemainingCapacity(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		counts   occupancy.Counts
		want     int
		hasRoom  bool
	}{
		{"empty lot", 10, occupancy.Counts{}, 10, true},
		{"sessions only", 10, occupancy.Counts{ActiveSessions: 4}, 6, true},
		{"reservations only", 10, occupancy.Counts{OverlappingUnstarted: 3}, 7, true},
		{"last spot taken", 2, occupancy.Counts{ActiveSessions: 1, OverlappingUnstarted: 1}, 0, false},
		{"overbooked", 2, occupancy.Counts{ActiveSessions: 2, OverlappingUnstarted: 1}, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, occupancy.RemainingCapacity(tc.capacity, tc.counts))
			assert.Equal(t, tc.hasRoom, occupancy.HasRoom(tc.capacity, tc.counts))
		})
	}
}

func TestRemainingCapacityProperties(t *testing.T) {
	const capacity = 5
	for sessions := 0; sessions <= 6; sessions++ {
		for unstarted := 0; unstarted <= 6; unstarted++ {
			got := occupancy.RemainingCapacity(capacity, occupancy.Counts{ActiveSessions: sessions, OverlappingUnstarted: unstarted})
			assert.LessOrEqual(t, got, capacity)

			moreSessions := occupancy.RemainingCapacity(capacity, occupancy.Counts{ActiveSessions: sessions + 1, OverlappingUnstarted: unstarted})
			moreUnstarted := occupancy.RemainingCapacity(capacity, occupancy.Counts{ActiveSessions: sessions, OverlappingUnstarted: unstarted + 1})
			assert.Less(t, moreSessions, got)
			assert.Less(t, moreUnstarted, got)
		}
	}
}
