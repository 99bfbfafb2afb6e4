package domain

// MergeResult is the outcome of merging resolved bom content with the
// versions that existed before resolution.
type MergeResult struct {
	// Versions is the effective identity -> version map.
	Versions map[Identity]string

	// Exclusions holds the exclusions contributed by bom entries.
	Exclusions *Exclusions

	// Properties is the merged property table across all boms.
	Properties map[string]string

	// Missing lists bom entries skipped because they carry no version.
	// Callers are expected to surface these as warnings.
	Missing []MissingVersion
}

// MissingVersion identifies a managed dependency entry that was skipped
// because its coordinates carry no version, and the bom it came from.
type MissingVersion struct {
	Dependency Dependency
	Bom        Coordinates
}

// MergeManaged merges resolved boms, in order, into a fresh version map and
// exclusion ledger, then re-applies the pre-existing versions on top.
//
// Within and across boms, later entries win on identity collision; the same
// holds for the property tables. Classifier-qualified entries contribute
// nothing. The existing map always outranks bom content, regardless of bom
// order. The inputs are not mutated.
func MergeManaged(existing map[Identity]string, poms []Pom) MergeResult {
	result := MergeResult{
		Versions:   make(map[Identity]string),
		Exclusions: NewExclusions(),
		Properties: make(map[string]string),
	}

	for _, pom := range poms {
		for _, dep := range pom.ManagedDependencies {
			if dep.HasClassifier() {
				continue
			}
			if !dep.Coordinates.HasVersion() {
				result.Missing = append(result.Missing, MissingVersion{
					Dependency: dep,
					Bom:        pom.Coordinates,
				})
				continue
			}
			id := dep.Coordinates.Identity()
			result.Versions[id] = dep.Coordinates.Version
			result.Exclusions.Add(id, dep.Exclusions)
		}
		for name, value := range pom.Properties {
			result.Properties[name] = value
		}
	}

	// Pre-existing declarations always outrank bom-imported ones.
	for id, version := range existing {
		result.Versions[id] = version
	}

	return result
}
