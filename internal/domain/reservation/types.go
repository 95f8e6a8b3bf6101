package reservation

import (
	"strings"

	"parking-engine/internal/pkg/errs"
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusEntered   Status = "entered"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusEntered, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleVan        VehicleType = "van"
)

func NewVehicleType(value string) (VehicleType, error) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(value)))
	if !v.IsValid() {
		return "", errs.Wrapf(errs.ErrInvalidVehicle, "unknown vehicle type %q", value)
	}
	return v, nil
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCar, VehicleMotorcycle, VehicleVan:
		return true
	default:
		return false
	}
}

func (v VehicleType) String() string {
	return string(v)
}
