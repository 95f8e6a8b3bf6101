package reservation

import (
	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/interval"
	"parking-engine/internal/domain/occupancy"
	"parking-engine/internal/domain/parking"
	"parking-engine/internal/domain/schedule"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRequest struct {
	UserID      uuid.UUID
	Interval    interval.Interval
	VehicleType VehicleType
}

type Factory struct {
	Clock    clock.Clock
	Billing  *billing.Calculator
	Coverage *schedule.Coverage
}

func NewFactory(clock clock.Clock, calc *billing.Calculator, coverage *schedule.Coverage) *Factory {
	return &Factory{
		Clock:    clock,
		Billing:  calc,
		Coverage: coverage,
	}
}

// Book decides a booking from counts read by the caller. A subscription of
// the same user and lot covering the whole interval bypasses capacity and
// is not charged again.
func (f *Factory) Book(
	p *parking.Parking,
	req BookingRequest,
	counts occupancy.Counts,
	subs []*schedule.Subscription,
) (*Reservation, error) {
	iv := req.Interval
	if !iv.End().After(iv.Start()) {
		return nil, errs.Wrapf(errs.ErrInvalidInterval, "booking interval %s", iv)
	}
	if !req.VehicleType.IsValid() {
		return nil, errs.Wrapf(errs.ErrInvalidVehicle, "vehicle type %q", req.VehicleType)
	}

	var subscriptionID *uuid.UUID
	amount := decimal.Zero
	if sub := f.Coverage.AnyCovers(subs, req.UserID, p.ID(), iv); sub != nil {
		subscriptionID = ptr.Of(sub.ID())
	} else {
		if remaining := occupancy.RemainingCapacity(p.Capacity(), counts); remaining <= 0 {
			return nil, errs.Wrapf(errs.ErrCapacityExceeded, "parking %s has %d spots left for %s",
				p.ID(), remaining, iv)
		}
		amount = f.Billing.Quote(iv, p.HourlyRate())
	}

	now := f.Clock.Now()
	return &Reservation{
		id:             uuid.New(),
		userID:         req.UserID,
		parkingID:      p.ID(),
		interval:       iv,
		vehicleType:    req.VehicleType,
		amount:         amount,
		subscriptionID: subscriptionID,
		status:         StatusBooked,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}
