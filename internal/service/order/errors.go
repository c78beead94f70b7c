package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidAdminID        = errors.New("invalid admin id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidCargoType      = errors.New("invalid cargo type")
	ErrInvalidDeadline       = errors.New("invalid delivery deadline")
	ErrMissingAddress        = errors.New("missing sender or recipient address")
	ErrMissingCoordinates    = errors.New("missing sender or recipient coordinates")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrStatusMismatch        = errors.New("event status does not match current order status")

	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderNotAvailable     = errors.New("order no longer available")
	ErrInvalidOrderState     = errors.New("invalid order state")
	ErrNotAssignedDriver     = errors.New("driver is not assigned to this order")
	ErrDriverNameUnavailable = errors.New("driver name unavailable")
)
