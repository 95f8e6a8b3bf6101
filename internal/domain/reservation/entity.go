package reservation

import (
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/interval"
	"parking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Reservation struct {
	id             uuid.UUID
	userID         uuid.UUID
	parkingID      uuid.UUID
	interval       interval.Interval
	vehicleType    VehicleType
	amount         decimal.Decimal
	subscriptionID *uuid.UUID
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

type ExitResult struct {
	Session *Session
	Billing billing.Result
}

func ReconstructReservation(
	id, userID, parkingID uuid.UUID,
	iv interval.Interval,
	vehicleType VehicleType,
	amount decimal.Decimal,
	subscriptionID *uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		userID:         userID,
		parkingID:      parkingID,
		interval:       iv,
		vehicleType:    vehicleType,
		amount:         amount,
		subscriptionID: subscriptionID,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Enter opens a session at now. open is the session currently stored for
// this reservation, nil when there is none.
func (r *Reservation) Enter(now time.Time, open *Session) (*Session, error) {
	if r.status == StatusEntered || (open != nil && open.IsOpen()) {
		return nil, errs.Wrapf(errs.ErrAlreadyEntered, "reservation %s", r.id)
	}
	if r.status != StatusBooked {
		return nil, errs.Wrapf(errs.ErrInvalidStatus, "reservation %s is %s", r.id, r.status)
	}
	if !r.IsActiveAt(now) {
		return nil, errs.Wrapf(errs.ErrNotActiveYet, "reservation %s window %s, now %s",
			r.id, r.interval, now.Format(time.RFC3339))
	}

	session := newSession(r.id, now)
	r.status = StatusEntered
	r.updatedAt = now
	return session, nil
}

// Exit closes the open session and bills it. Exit is never refused once an
// open session exists, whatever the time.
func (r *Reservation) Exit(open *Session, now time.Time, hourlyRate decimal.Decimal, calc *billing.Calculator) (*ExitResult, error) {
	if open == nil || !open.IsOpen() || open.reservationID != r.id {
		return nil, errs.Wrapf(errs.ErrNotEntered, "reservation %s", r.id)
	}

	result := calc.Compute(open.enteredAt, now, r.interval.End(), hourlyRate)
	open.close(now, result.TotalAmount, result.PenaltyAmount)

	r.status = StatusCompleted
	r.updatedAt = now
	return &ExitResult{Session: open, Billing: result}, nil
}

// Cancel is allowed only while booked and strictly before the window starts.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusBooked {
		return errs.Wrapf(errs.ErrNotCancellable, "reservation %s is %s", r.id, r.status)
	}
	if !now.Before(r.interval.Start()) {
		return errs.Wrapf(errs.ErrNotCancellable, "reservation %s already started at %s",
			r.id, r.interval.Start().Format(time.RFC3339))
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

// IsActiveAt reports whether a booked reservation may be entered at now.
func (r *Reservation) IsActiveAt(now time.Time) bool {
	return r.status == StatusBooked && r.interval.ContainsClosed(now)
}

func (r *Reservation) IsCoveredBySubscription() bool {
	return r.subscriptionID != nil
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) ParkingID() uuid.UUID        { return r.parkingID }
func (r *Reservation) Interval() interval.Interval { return r.interval }
func (r *Reservation) VehicleType() VehicleType    { return r.vehicleType }
func (r *Reservation) Amount() decimal.Decimal     { return r.amount }
func (r *Reservation) SubscriptionID() *uuid.UUID  { return r.subscriptionID }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
