package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/occupancy"
	"parking-engine/internal/domain/parking"
	"parking-engine/internal/domain/reservation"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrParkingNotFound     = errs.New("parking not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidVehicleType  = errs.New("invalid vehicle type")
	ErrLockFailed          = errs.New("failed to acquire parking lock")
	ErrPersistence         = errs.New("persistence operation failed")
)

type BookParams struct {
	UserID      uuid.UUID
	ParkingID   uuid.UUID
	Start       time.Time
	End         time.Time
	VehicleType string
}

type ReservationCommands interface {
	Book(ctx context.Context, params BookParams) (*reservation.Reservation, error)
	Enter(ctx context.Context, reservationID uuid.UUID) (*reservation.Session, error)
	Exit(ctx context.Context, reservationID uuid.UUID) (*reservation.ExitResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	parkingRepo        ParkingRepository
	occupancy          OccupancyCounter
	subscriptionRepo   SubscriptionRepository
	reservationRepo    ReservationRepository
	sessionRepo        SessionRepository
	tx                 Transactor
	locker             ParkingLocker
	reservationFactory *reservation.Factory
	calculator         *billing.Calculator
	coverage           *schedule.Coverage
	clock              clock.Clock
	logger             *slog.Logger
}

func NewReservationUseCase(
	parkingRepo ParkingRepository,
	occupancy OccupancyCounter,
	subscriptionRepo SubscriptionRepository,
	reservationRepo ReservationRepository,
	sessionRepo SessionRepository,
	tx Transactor,
	locker ParkingLocker,
	reservationFactory *reservation.Factory,
	calculator *billing.Calculator,
	coverage *schedule.Coverage,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		parkingRepo:        parkingRepo,
		occupancy:          occupancy,
		subscriptionRepo:   subscriptionRepo,
		reservationRepo:    reservationRepo,
		sessionRepo:        sessionRepo,
		tx:                 tx,
		locker:             locker,
		reservationFactory: reservationFactory,
		calculator:         calculator,
		coverage:           coverage,
		clock:              clock,
		logger:             logger,
	}
}

func (r *reservationUseCaseImpl) Book(ctx context.Context, params BookParams) (*reservation.Reservation, error) {
	iv, err := interval.New(params.Start, params.End)
	if err != nil {
		return nil, err
	}

	vehicleType, err := reservation.NewVehicleType(params.VehicleType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVehicleType)
	}

	unlock, err := r.lock(ctx, params.ParkingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	parkingEntity, err := r.findParking(ctx, params.ParkingID)
	if err != nil {
		return nil, err
	}

	if !parkingEntity.IsOpenDuring(iv, r.coverage) {
		hours := parkingEntity.OpeningHours()
		return nil, errs.Wrapf(errs.ErrParkingClosed, "parking %s open %s-%s, requested %s",
			parkingEntity.Name(), hours.Open, hours.Close, iv)
	}

	subs, err := r.subscriptionRepo.FindByUserAndParking(ctx, params.UserID, params.ParkingID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	counts, err := r.readCounts(ctx, params.ParkingID, iv)
	if err != nil {
		return nil, err
	}

	res, err := r.reservationFactory.Book(parkingEntity, reservation.BookingRequest{
		UserID:      params.UserID,
		Interval:    iv,
		VehicleType: vehicleType,
	}, counts, subs)
	if err != nil {
		if errs.Is(err, errs.ErrCapacityExceeded) {
			r.logger.Warn("booking refused",
				"parking_id", params.ParkingID,
				"user_id", params.UserID,
				"active_sessions", counts.ActiveSessions,
				"overlapping_unstarted", counts.OverlappingUnstarted,
				"capacity", parkingEntity.Capacity())
		}
		return nil, err
	}

	err = r.tx.Within(ctx, func(ctx context.Context) error {
		return r.reservationRepo.Save(ctx, res)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	r.logger.Info("reservation booked",
		"reservation_id", res.ID(),
		"parking_id", res.ParkingID(),
		"user_id", res.UserID(),
		"subscription", res.IsCoveredBySubscription(),
		"amount", res.Amount().StringFixed(2))
	return res, nil
}

func (r *reservationUseCaseImpl) Enter(ctx context.Context, reservationID uuid.UUID) (*reservation.Session, error) {
	var session *reservation.Session
	err := r.withReservation(ctx, reservationID, func(ctx context.Context, res *reservation.Reservation) error {
		open, err := r.sessionRepo.FindOpenByReservation(ctx, res.ID())
		if err != nil {
			return errs.Mark(err, ErrPersistence)
		}

		session, err = res.Enter(r.clock.Now(), open)
		if err != nil {
			return err
		}

		return r.saveBoth(ctx, res, session)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("vehicle entered",
		"reservation_id", reservationID,
		"session_id", session.ID(),
		"entered_at", session.EnteredAt())
	return session, nil
}

func (r *reservationUseCaseImpl) Exit(ctx context.Context, reservationID uuid.UUID) (*reservation.ExitResult, error) {
	var result *reservation.ExitResult
	err := r.withReservation(ctx, reservationID, func(ctx context.Context, res *reservation.Reservation) error {
		open, err := r.sessionRepo.FindOpenByReservation(ctx, res.ID())
		if err != nil {
			return errs.Mark(err, ErrPersistence)
		}

		parkingEntity, err := r.findParking(ctx, res.ParkingID())
		if err != nil {
			return err
		}

		result, err = res.Exit(open, r.clock.Now(), parkingEntity.HourlyRate(), r.calculator)
		if err != nil {
			return err
		}

		return r.saveBoth(ctx, res, result.Session)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("vehicle exited",
		"reservation_id", reservationID,
		"session_id", result.Session.ID(),
		"billed_minutes", result.Billing.BilledMinutes,
		"overtime_minutes", result.Billing.OvertimeMinutes,
		"total", result.Billing.TotalAmount.StringFixed(2),
		"penalty", result.Billing.PenaltyAmount.StringFixed(2))
	return result, nil
}

func (r *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var canceled *reservation.Reservation
	err := r.withReservation(ctx, reservationID, func(ctx context.Context, res *reservation.Reservation) error {
		if err := res.Cancel(r.clock.Now()); err != nil {
			return err
		}
		canceled = res

		return r.tx.Within(ctx, func(ctx context.Context) error {
			if err := r.reservationRepo.Save(ctx, res); err != nil {
				return errs.Mark(err, ErrPersistence)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("reservation canceled", "reservation_id", reservationID)
	return canceled, nil
}

// withReservation locks the reservation's parking and reloads the
// reservation under the lock before running fn.
func (r *reservationUseCaseImpl) withReservation(
	ctx context.Context,
	reservationID uuid.UUID,
	fn func(ctx context.Context, res *reservation.Reservation) error,
) error {
	res, err := r.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	unlock, err := r.lock(ctx, res.ParkingID())
	if err != nil {
		return err
	}
	defer unlock()

	res, err = r.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	return fn(ctx, res)
}

func (r *reservationUseCaseImpl) saveBoth(ctx context.Context, res *reservation.Reservation, session *reservation.Session) error {
	return r.tx.Within(ctx, func(ctx context.Context) error {
		if err := r.sessionRepo.Save(ctx, session); err != nil {
			return errs.Mark(err, ErrPersistence)
		}
		if err := r.reservationRepo.Save(ctx, res); err != nil {
			return errs.Mark(err, ErrPersistence)
		}
		return nil
	})
}

func (r *reservationUseCaseImpl) lock(ctx context.Context, parkingID uuid.UUID) (func(), error) {
	unlock, err := r.locker.Lock(ctx, parkingID)
	if err != nil {
		return nil, errs.Mark(err, ErrLockFailed)
	}
	return unlock, nil
}

func (r *reservationUseCaseImpl) readCounts(ctx context.Context, parkingID uuid.UUID, iv interval.Interval) (occupancy.Counts, error) {
	active, err := r.occupancy.ActiveSessionCount(ctx, parkingID)
	if err != nil {
		return occupancy.Counts{}, errs.Mark(err, ErrPersistence)
	}
	unstarted, err := r.occupancy.OverlappingUnstartedReservationCount(ctx, parkingID, iv)
	if err != nil {
		return occupancy.Counts{}, errs.Mark(err, ErrPersistence)
	}
	return occupancy.Counts{ActiveSessions: active, OverlappingUnstarted: unstarted}, nil
}

func (r *reservationUseCaseImpl) findParking(ctx context.Context, id uuid.UUID) (*parking.Parking, error) {
	p, err := r.parkingRepo.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, ErrParkingNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	if p == nil {
		return nil, errs.Wrapf(ErrParkingNotFound, "parking %s", id)
	}
	return p, nil
}

func (r *reservationUseCaseImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, ErrReservationNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	if res == nil {
		return nil, errs.Wrapf(ErrReservationNotFound, "reservation %s", id)
	}
	return res, nil
}
