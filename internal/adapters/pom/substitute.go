package pom

import (
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// substitute replaces every ${name} placeholder in s with the value supplied
// by properties. Placeholders the source does not know stay literal.
func substitute(s string, properties domain.PropertySource) string {
	if properties == nil || !strings.Contains(s, "${") {
		return s
	}
	var out strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end += start
		name := rest[start+2 : end]
		out.WriteString(rest[:start])
		if value, ok := properties.Property(name); ok {
			out.WriteString(value)
		} else {
			out.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
}

// substituteCoordinates resolves placeholders in bom reference coordinates.
// Unlike placeholders inside bom content, a placeholder that survives here
// makes the reference unfetchable, so it is an error.
func substituteCoordinates(c domain.Coordinates, properties domain.PropertySource) (domain.Coordinates, error) {
	out := domain.Coordinates{
		Group:    substitute(c.Group, properties),
		Artifact: substitute(c.Artifact, properties),
		Version:  substitute(c.Version, properties),
	}
	for _, part := range []string{out.Group, out.Artifact, out.Version} {
		if strings.Contains(part, "${") {
			return domain.Coordinates{}, zerr.With(domain.ErrUnresolvedPlaceholder, "coordinates", out.String())
		}
	}
	return out, nil
}
