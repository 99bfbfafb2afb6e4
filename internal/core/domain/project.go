package domain

// Declarations is one block of dependency-management declarations: bom
// imports and explicitly pinned dependencies, both in declaration order.
type Declarations struct {
	Imports      []Coordinates
	Dependencies []Dependency
}

// IsEmpty reports whether the block declares nothing.
func (d Declarations) IsEmpty() bool {
	return len(d.Imports) == 0 && len(d.Dependencies) == 0
}

// Project is the parsed pin.yaml project file: repositories to resolve poms
// from, project-level properties usable in placeholders, the global
// declaration block and the per-configuration blocks.
type Project struct {
	Name           string
	Repositories   []string
	Properties     map[string]string
	Global         Declarations
	Configurations map[string]Declarations
}

// PropertySource returns the project's properties as a PropertySource.
func (p *Project) PropertySource() PropertySource {
	return MapPropertySource(p.Properties)
}
