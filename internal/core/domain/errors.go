package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCoordinates is returned when a coordinates string does not
	// have the group:artifact[:version] shape.
	ErrMalformedCoordinates = zerr.New("malformed coordinates")

	// ErrBomResolutionFailed is returned when imported boms could not be
	// resolved into their managed dependency content.
	ErrBomResolutionFailed = zerr.New("failed to resolve imported boms")

	// ErrPomNotFound is returned when no configured repository serves the
	// requested pom document.
	ErrPomNotFound = zerr.New("pom not found in any repository")

	// ErrUnresolvedPlaceholder is returned when a ${...} placeholder survives
	// property substitution in a bom's coordinates.
	ErrUnresolvedPlaceholder = zerr.New("unresolved property placeholder")

	// ErrConfigurationNotFound is returned when a query names a configuration
	// the project file does not declare.
	ErrConfigurationNotFound = zerr.New("configuration not found")
)
