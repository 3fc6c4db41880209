package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrNotFound) {
//	    // handle not found case
//	}
var (
	// ErrNotFound is returned when a device id does not exist.
	ErrNotFound = errors.New("device: not found")

	// ErrInvalidDeviceTypeName is returned when the device type name is empty.
	ErrInvalidDeviceTypeName = errors.New("device: invalid device type name")

	// ErrInvalidCustomName is returned when the custom name violates the
	// schema or length rules.
	ErrInvalidCustomName = errors.New("device: invalid custom name")

	// ErrInvalidField is returned when a present optional field is
	// non-numeric or out of its declared range.
	ErrInvalidField = errors.New("device: invalid field")
)
