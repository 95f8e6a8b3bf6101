package occupancy

// Counts are supplied by the persistence layer at call time.
type Counts struct {
	// ActiveSessions is the number of open sessions in the lot, whatever
	// reservation or window they belong to.
	ActiveSessions int
	// OverlappingUnstarted is the number of reservations overlapping the
	// requested interval that currently have no open session.
	OverlappingUnstarted int
}

func (c Counts) Occupied() int {
	return c.ActiveSessions + c.OverlappingUnstarted
}

// RemainingCapacity is capacity minus occupied spots. A car that entered is
// counted once through ActiveSessions, never again through its reservation.
// Zero or less means the lot is full for the interval.
func RemainingCapacity(capacity int, counts Counts) int {
	return capacity - counts.Occupied()
}

func HasRoom(capacity int, counts Counts) bool {
	return RemainingCapacity(capacity, counts) > 0
}
