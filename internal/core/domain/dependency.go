package domain

// Exclusion names a transitive artifact that must never be pulled in when the
// dependency it is attached to is used.
type Exclusion struct {
	Group    InternedString
	Artifact InternedString
}

// NewExclusion creates an Exclusion from raw group and artifact strings.
func NewExclusion(group, artifact string) Exclusion {
	return Exclusion{
		Group:    NewInternedString(group),
		Artifact: NewInternedString(artifact),
	}
}

// String returns the canonical "group:artifact" form.
func (e Exclusion) String() string {
	return e.Group.String() + ":" + e.Artifact.String()
}

// Dependency is a managed dependency entry: coordinates (the version may be
// empty), an optional classifier and the exclusions declared alongside it.
type Dependency struct {
	Coordinates Coordinates
	Classifier  string
	Exclusions  []Exclusion
}

// HasClassifier reports whether the entry is classifier-qualified.
// Classifier-qualified entries are not subject to plain version management.
func (d Dependency) HasClassifier() bool {
	return d.Classifier != ""
}
