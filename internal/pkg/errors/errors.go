package errors

import "errors"

var (
	// ErrModuleNotFound is returned when a catalog or curriculum lookup
	// references an unknown module id.
	ErrModuleNotFound = errors.New("module not found")
	// ErrDanglingPrerequisite is returned when a pathway references a
	// prerequisite module that is not part of the pathway.
	ErrDanglingPrerequisite = errors.New("dangling prerequisite reference")
	// ErrInvalidModification is returned for malformed modification requests.
	ErrInvalidModification = errors.New("invalid modification")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
