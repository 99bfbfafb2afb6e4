package domain

// PropertySource supplies values for ${...} placeholders inside bom
// coordinates and content. Lookup only, no mutation.
type PropertySource interface {
	// Property returns the value for name, or false when the source has no
	// entry for it.
	Property(name string) (string, bool)
}

// MapPropertySource is a PropertySource backed by a plain map.
type MapPropertySource map[string]string

// Property implements PropertySource.
func (m MapPropertySource) Property(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// CompositePropertySource chains sources; the first source that knows the
// name wins.
type CompositePropertySource []PropertySource

// Property implements PropertySource.
func (c CompositePropertySource) Property(name string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Property(name); ok {
			return v, true
		}
	}
	return "", false
}
