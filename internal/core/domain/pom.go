package domain

// Pom is a fully resolved bom document: its coordinates, its managed
// dependency entries in declaration order, and its property table.
type Pom struct {
	Coordinates         Coordinates
	ManagedDependencies []Dependency
	Properties          map[string]string
}

// PomReference is an import declaration: coordinates that may still contain
// property placeholders, plus the property source used to resolve them.
// References accumulate in declaration order and are never deduplicated.
type PomReference struct {
	Coordinates Coordinates
	Properties  PropertySource
}

// NewPomReference creates a PomReference for the given coordinates.
func NewPomReference(coordinates Coordinates, properties PropertySource) PomReference {
	return PomReference{Coordinates: coordinates, Properties: properties}
}
