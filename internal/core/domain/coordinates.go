// Package domain contains the core domain model for dependency version
// management: library identities, managed dependencies, resolved boms and the
// merge semantics that combine them.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Identity is the (group, artifact) pair that keys every map in the system.
// Version and classifier are deliberately not part of identity.
type Identity struct {
	Group    InternedString
	Artifact InternedString
}

// NewIdentity creates an Identity from raw group and artifact strings.
func NewIdentity(group, artifact string) Identity {
	return Identity{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
	}
}

// String returns the canonical "group:artifact" form.
func (id Identity) String() string {
	return id.Group.String() + ":" + id.Artifact.String()
}

// Coordinates identify a concrete artifact: group, artifact and version.
// The version may be empty (a bom entry without a version) or contain
// unresolved ${...} placeholders prior to pom resolution.
type Coordinates struct {
	Group    string
	Artifact string
	Version  string
}

// NewCoordinates creates Coordinates from its three components.
func NewCoordinates(group, artifact, version string) Coordinates {
	return Coordinates{Group: group, Artifact: artifact, Version: version}
}

// ParseCoordinates parses a "group:artifact" or "group:artifact:version"
// string. It returns ErrMalformedCoordinates when the shape is wrong.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		return Coordinates{Group: parts[0], Artifact: parts[1]}, nil
	case 3:
		return Coordinates{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
	default:
		return Coordinates{}, zerr.With(ErrMalformedCoordinates, "coordinates", s)
	}
}

// Identity returns the identity portion of the coordinates.
func (c Coordinates) Identity() Identity {
	return NewIdentity(c.Group, c.Artifact)
}

// GroupAndArtifact returns the "group:artifact" form.
func (c Coordinates) GroupAndArtifact() string {
	return c.Group + ":" + c.Artifact
}

// String returns "group:artifact:version", omitting a trailing empty version.
func (c Coordinates) String() string {
	if c.Version == "" {
		return c.GroupAndArtifact()
	}
	return c.GroupAndArtifact() + ":" + c.Version
}

// HasVersion reports whether the coordinates carry a non-blank version.
func (c Coordinates) HasVersion() bool {
	return strings.TrimSpace(c.Version) != ""
}
