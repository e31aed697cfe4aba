package maven

import "errors"

// Sentinel errors for invalid build model input.
var (
	// ErrUnknownScope is returned for a dependency scope outside the known set.
	ErrUnknownScope = errors.New("unknown dependency scope")

	// ErrInvalidCoordinate is returned when a required groupId or artifactId is missing.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidVersionProperty is returned for a version property name that is
	// not in standard format.
	ErrInvalidVersionProperty = errors.New("invalid version property")
)
