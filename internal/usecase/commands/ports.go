package commands

import (
	"context"

	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/parking"
	"parking-engine/internal/domain/reservation"
	"parking-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mock/mock_ports.go -package=mock

// Repositories return ErrParkingNotFound / ErrReservationNotFound (possibly
// wrapped) when the row does not exist; any other error is a storage failure.

type ParkingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error)
}

// OccupancyCounter supplies the two counts the occupancy accountant needs.
type OccupancyCounter interface {
	ActiveSessionCount(ctx context.Context, parkingID uuid.UUID) (int, error)
	OverlappingUnstartedReservationCount(ctx context.Context, parkingID uuid.UUID, iv interval.Interval) (int, error)
}

type SubscriptionRepository interface {
	FindByUserAndParking(ctx context.Context, userID, parkingID uuid.UUID) ([]*schedule.Subscription, error)
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, res *reservation.Reservation) error
}

type SessionRepository interface {
	// FindOpenByReservation returns nil, nil when no session is open.
	FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) (*reservation.Session, error)
	Save(ctx context.Context, session *reservation.Session) error
}

// Transactor runs fn so that every write inside it commits or none does.
type Transactor interface {
	Within(ctx context.Context, fn func(ctx context.Context) error) error
}

// ParkingLocker serializes read-decide-write sequences per parking lot.
type ParkingLocker interface {
	Lock(ctx context.Context, parkingID uuid.UUID) (unlock func(), err error)
}
