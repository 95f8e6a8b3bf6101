package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is the physical stay of a vehicle, from entry to exit.
type Session struct {
	id            uuid.UUID
	reservationID uuid.UUID
	enteredAt     time.Time
	exitedAt      *time.Time
	billedAmount  *decimal.Decimal
	penaltyAmount *decimal.Decimal
}

func newSession(reservationID uuid.UUID, enteredAt time.Time) *Session {
	return &Session{
		id:            uuid.New(),
		reservationID: reservationID,
		enteredAt:     enteredAt,
	}
}

func ReconstructSession(
	id, reservationID uuid.UUID,
	enteredAt time.Time,
	exitedAt *time.Time,
	billedAmount, penaltyAmount *decimal.Decimal,
) *Session {
	return &Session{
		id:            id,
		reservationID: reservationID,
		enteredAt:     enteredAt,
		exitedAt:      exitedAt,
		billedAmount:  billedAmount,
		penaltyAmount: penaltyAmount,
	}
}

func (s *Session) IsOpen() bool {
	return s.exitedAt == nil
}

func (s *Session) close(exitedAt time.Time, billed, penalty decimal.Decimal) {
	s.exitedAt = &exitedAt
	s.billedAmount = &billed
	s.penaltyAmount = &penalty
}

func (s *Session) ID() uuid.UUID                   { return s.id }
func (s *Session) ReservationID() uuid.UUID        { return s.reservationID }
func (s *Session) EnteredAt() time.Time            { return s.enteredAt }
func (s *Session) ExitedAt() *time.Time            { return s.exitedAt }
func (s *Session) BilledAmount() *decimal.Decimal  { return s.billedAmount }
func (s *Session) PenaltyAmount() *decimal.Decimal { return s.penaltyAmount }
