package memory

import (
	"context"
	"sync"

	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/parking"
	"parking-engine/internal/domain/reservation"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Store keeps parkings, subscriptions, reservations and sessions in process.
// Reservations and sessions are stored as copies so callers never share
// state with the store.
type Store struct {
	mu            sync.RWMutex
	parkings      map[uuid.UUID]*parking.Parking
	subscriptions []*schedule.Subscription
	reservations  map[uuid.UUID]*reservation.Reservation
	sessions      map[uuid.UUID]*reservation.Session
}

func NewStore() *Store {
	return &Store{
		parkings:     make(map[uuid.UUID]*parking.Parking),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		sessions:     make(map[uuid.UUID]*reservation.Session),
	}
}

func (s *Store) AddParking(p *parking.Parking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parkings[p.ID()] = p
}

func (s *Store) AddSubscription(sub *schedule.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = append(s.subscriptions, sub)
}

func (s *Store) Parkings() ParkingRepository           { return ParkingRepository{s} }
func (s *Store) Occupancy() OccupancyCounter           { return OccupancyCounter{s} }
func (s *Store) Subscriptions() SubscriptionRepository { return SubscriptionRepository{s} }
func (s *Store) Reservations() ReservationRepository   { return ReservationRepository{s} }
func (s *Store) Sessions() SessionRepository           { return SessionRepository{s} }

type ParkingRepository struct{ s *Store }

func (r ParkingRepository) FindByID(_ context.Context, id uuid.UUID) (*parking.Parking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.parkings[id], nil
}

type OccupancyCounter struct{ s *Store }

func (c OccupancyCounter) ActiveSessionCount(_ context.Context, parkingID uuid.UUID) (int, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	n := 0
	for _, session := range c.s.sessions {
		if !session.IsOpen() {
			continue
		}
		if res, ok := c.s.reservations[session.ReservationID()]; ok && res.ParkingID() == parkingID {
			n++
		}
	}
	return n, nil
}

// OverlappingUnstartedReservationCount counts reservations overlapping iv
// that hold no open session: the car has not arrived yet or already left.
// A car that leaves early keeps its window. Canceled reservations release it.
func (c OccupancyCounter) OverlappingUnstartedReservationCount(_ context.Context, parkingID uuid.UUID, iv interval.Interval) (int, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	n := 0
	for _, res := range c.s.reservations {
		if res.ParkingID() != parkingID || res.Status() == reservation.StatusCanceled {
			continue
		}
		if !res.Interval().Overlaps(iv) || c.s.hasOpenSession(res.ID()) {
			continue
		}
		n++
	}
	return n, nil
}

// hasOpenSession must be called with s.mu held.
func (s *Store) hasOpenSession(reservationID uuid.UUID) bool {
	for _, session := range s.sessions {
		if session.ReservationID() == reservationID && session.IsOpen() {
			return true
		}
	}
	return false
}

type SubscriptionRepository struct{ s *Store }

func (r SubscriptionRepository) FindByUserAndParking(_ context.Context, userID, parkingID uuid.UUID) ([]*schedule.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*schedule.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.AppliesTo(userID, parkingID) {
			out = append(out, sub)
		}
	}
	return out, nil
}

type ReservationRepository struct{ s *Store }

func (r ReservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	return cloneReservation(res), nil
}

func (r ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	snapshot := cloneReservation(res)
	r.s.write(ctx, func() { r.s.reservations[snapshot.ID()] = snapshot })
	return nil
}

type SessionRepository struct{ s *Store }

func (r SessionRepository) FindOpenByReservation(_ context.Context, reservationID uuid.UUID) (*reservation.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, session := range r.s.sessions {
		if session.ReservationID() == reservationID && session.IsOpen() {
			return cloneSession(session), nil
		}
	}
	return nil, nil
}

func (r SessionRepository) Save(ctx context.Context, session *reservation.Session) error {
	snapshot := cloneSession(session)
	r.s.write(ctx, func() { r.s.sessions[snapshot.ID()] = snapshot })
	return nil
}

// write applies op now, or stages it when ctx carries a transaction.
func (s *Store) write(ctx context.Context, op func()) {
	if tx, ok := ctx.Value(txKey{}).(*txBuffer); ok {
		tx.ops = append(tx.ops, op)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	op()
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.UserID(), r.ParkingID(),
		r.Interval(),
		r.VehicleType(),
		r.Amount(),
		ptr.Copy(r.SubscriptionID()),
		r.Status(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func cloneSession(s *reservation.Session) *reservation.Session {
	return reservation.ReconstructSession(
		s.ID(), s.ReservationID(),
		s.EnteredAt(),
		ptr.Copy(s.ExitedAt()),
		ptr.Copy(s.BilledAmount()),
		ptr.Copy(s.PenaltyAmount()),
	)
}
