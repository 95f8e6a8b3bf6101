package errs

// Error kinds returned by the occupancy, billing and schedule engine.
// Callers match them with errors.Is and map them to their own status codes.
var (
	// Interval errors
	ErrInvalidInterval = New("invalid interval")

	// Booking errors
	ErrCapacityExceeded = New("capacity exceeded")
	ErrParkingClosed    = New("parking closed during requested interval")
	ErrInvalidParking   = New("invalid parking")
	ErrInvalidVehicle   = New("invalid vehicle type")

	// Lifecycle errors
	ErrNotActiveYet   = New("reservation is not active")
	ErrAlreadyEntered = New("reservation already entered")
	ErrNotEntered     = New("reservation has no open session")
	ErrNotCancellable = New("reservation cannot be canceled")
	ErrInvalidStatus  = New("invalid reservation status")

	// Schedule errors
	ErrInvalidSlot      = New("invalid weekly slot")
	ErrInvalidDateRange = New("invalid date range")

	// Configuration errors
	ErrInvalidConfig = New("invalid configuration")
)
