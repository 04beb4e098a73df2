package registry

import "errors"

// Sentinel errors returned by registry write paths. Lookups signal absence
// with a boolean instead; deletes are idempotent and never fail on a
// missing id.
var (
	ErrNotFound            = errors.New("record not found")
	ErrAlreadyExists       = errors.New("record with this id already exists")
	ErrDuplicateName       = errors.New("name already in use")
	ErrDuplicateRoomNumber = errors.New("room number already in use for this property")
	ErrUnknownPropertyType = errors.New("property type not in catalog")
	ErrVacantExceedsTotal  = errors.New("vacant rooms exceed total rooms")
	ErrCapacityExceeded    = errors.New("property room capacity exceeded")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomOccupied        = errors.New("room already occupied by another tenant")
	ErrProtectedRole       = errors.New("system role cannot be modified")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidRole         = errors.New("invalid user role")
)
