package schedule

import (
	"github.com/google/uuid"
)

type Subscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	parkingID uuid.UUID
	dates     DateRange
	slots     []WeeklySlot
}

func NewSubscription(id, userID, parkingID uuid.UUID, dates DateRange, slots []WeeklySlot) *Subscription {
	copied := make([]WeeklySlot, len(slots))
	copy(copied, slots)
	return &Subscription{
		id:        id,
		userID:    userID,
		parkingID: parkingID,
		dates:     dates,
		slots:     copied,
	}
}

func (s *Subscription) ID() uuid.UUID        { return s.id }
func (s *Subscription) UserID() uuid.UUID    { return s.userID }
func (s *Subscription) ParkingID() uuid.UUID { return s.parkingID }
func (s *Subscription) Dates() DateRange     { return s.dates }

func (s *Subscription) Slots() []WeeklySlot {
	out := make([]WeeklySlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// AppliesTo reports whether the subscription belongs to this user and lot.
func (s *Subscription) AppliesTo(userID, parkingID uuid.UUID) bool {
	return s.userID == userID && s.parkingID == parkingID
}
