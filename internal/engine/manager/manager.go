// Package manager implements the dependency management resolution engine:
// it merges imported bom content with explicitly declared versions under the
// precedence rules of the tool.
package manager

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// resolutionState tracks the one-shot resolution lifecycle of a Manager.
type resolutionState int

const (
	// stateUnresolved means resolution has not been attempted yet.
	stateUnresolved resolutionState = iota
	// stateResolved means resolution completed and results are frozen.
	stateResolved
	// stateFailed means resolution was attempted and failed. Terminal: the
	// failure is returned on every later read, never retried.
	stateFailed
)

// Manager encapsulates dependency management for one scope (the project's
// global scope or a single configuration). It is not safe for concurrent
// use; each scope owns its own instance and there is no shared state between
// instances.
type Manager struct {
	project       string
	configuration string

	resolver   ports.PomResolver
	properties domain.PropertySource
	log        ports.Logger

	state   resolutionState
	failure error

	versions           map[domain.Identity]string
	explicitVersions   map[domain.Identity]string
	explicitExclusions *domain.Exclusions
	allExclusions      *domain.Exclusions
	bomProperties      map[string]string
	importedBoms       []domain.PomReference
}

// New creates a Manager for the given scope. An empty configuration means
// the project's global dependency management.
func New(project, configuration string, resolver ports.PomResolver, properties domain.PropertySource, log ports.Logger) *Manager {
	return &Manager{
		project:            project,
		configuration:      configuration,
		resolver:           resolver,
		properties:         properties,
		log:                log,
		versions:           make(map[domain.Identity]string),
		explicitVersions:   make(map[domain.Identity]string),
		explicitExclusions: domain.NewExclusions(),
		allExclusions:      domain.NewExclusions(),
		bomProperties:      make(map[string]string),
	}
}

// RecordImplicitVersion unconditionally sets the version for id in the
// all-versions map.
func (m *Manager) RecordImplicitVersion(id domain.Identity, version string) {
	m.versions[id] = version
}

// RecordExplicitVersion records a version declared directly by the build
// author, along with the exclusions declared alongside it.
func (m *Manager) RecordExplicitVersion(id domain.Identity, version string, exclusions []domain.Exclusion) {
	m.explicitVersions[id] = version
	m.explicitExclusions.Add(id, exclusions)
	m.allExclusions.Add(id, exclusions)
	m.RecordImplicitVersion(id, version)
}

// ImportBom appends a bom import reference. References are kept in
// declaration order and never deduplicated. Imports added after the first
// read are not reflected; resolved output is a frozen snapshot.
func (m *Manager) ImportBom(coordinates domain.Coordinates, properties domain.PropertySource) {
	m.importedBoms = append(m.importedBoms, domain.NewPomReference(coordinates, properties))
}

// ImportedBomReferences returns the imported bom references in declaration
// order.
func (m *Manager) ImportedBomReferences() []domain.PomReference {
	return slices.Clone(m.importedBoms)
}

// ManagedVersion returns the managed version for id, or false when no
// version is known for it.
func (m *Manager) ManagedVersion(ctx context.Context, id domain.Identity) (string, bool, error) {
	if err := m.resolveIfNecessary(ctx); err != nil {
		return "", false, err
	}
	version, ok := m.versions[id]
	return version, ok, nil
}

// ManagedVersions returns a snapshot of the all-versions map. Mutating the
// returned map does not affect the engine.
func (m *Manager) ManagedVersions(ctx context.Context) (map[domain.Identity]string, error) {
	if err := m.resolveIfNecessary(ctx); err != nil {
		return nil, err
	}
	return maps.Clone(m.versions), nil
}

// Exclusions returns the ledger of all exclusions, explicit and bom-derived.
func (m *Manager) Exclusions(ctx context.Context) (*domain.Exclusions, error) {
	if err := m.resolveIfNecessary(ctx); err != nil {
		return nil, err
	}
	return m.allExclusions, nil
}

// ImportedProperties returns the property table merged across all resolved
// boms.
func (m *Manager) ImportedProperties(ctx context.Context) (map[string]string, error) {
	if err := m.resolveIfNecessary(ctx); err != nil {
		return nil, err
	}
	return maps.Clone(m.bomProperties), nil
}

// ManagedDependencies packages the explicitly declared versions and their
// exclusions as a dependency list. Explicit declarations are known without
// touching any bom, so this never triggers resolution.
func (m *Manager) ManagedDependencies() []domain.Dependency {
	ids := make([]domain.Identity, 0, len(m.explicitVersions))
	for id := range m.explicitVersions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	deps := make([]domain.Dependency, 0, len(ids))
	for _, id := range ids {
		deps = append(deps, domain.Dependency{
			Coordinates: domain.NewCoordinates(id.Group.String(), id.Artifact.String(), m.explicitVersions[id]),
			Exclusions:  m.explicitExclusions.For(id),
		})
	}
	return deps
}

func (m *Manager) resolveIfNecessary(ctx context.Context) error {
	switch m.state {
	case stateResolved:
		return nil
	case stateFailed:
		return m.failure
	case stateUnresolved:
	}

	// Deliberate short-circuit: a scope without bom imports never needs a
	// working pom resolver. The state stays Unresolved so the maps keep
	// serving whatever was recorded explicitly.
	if len(m.importedBoms) == 0 {
		return nil
	}

	// Mark the attempt before invoking the resolver so a failure is never
	// silently retried on a later read.
	m.state = stateFailed
	if err := m.resolve(ctx); err != nil {
		m.failure = zerr.With(
			zerr.Wrap(err, domain.ErrBomResolutionFailed.Error()),
			"cause", domain.RootCause(err).Error(),
		)
		return m.failure
	}
	m.state = stateResolved
	return nil
}

func (m *Manager) resolve(ctx context.Context) error {
	if m.configuration != "" {
		m.log.Info(fmt.Sprintf("resolving dependency management for configuration %q of project %q", m.configuration, m.project))
	} else {
		m.log.Info(fmt.Sprintf("resolving global dependency management for project %q", m.project))
	}

	// Snapshot what was recorded before any bom content is seen. These
	// versions outrank everything bom-derived.
	existing := maps.Clone(m.versions)
	m.log.Debug(fmt.Sprintf("preserving %d existing versions", len(existing)))

	poms, err := m.resolver.ResolvePoms(ctx, slices.Clone(m.importedBoms), m.properties)
	if err != nil {
		return err
	}

	merged := domain.MergeManaged(existing, poms)
	for _, missing := range merged.Missing {
		m.log.Warn(fmt.Sprintf("dependency management for %s in bom %s has no version and will be ignored",
			missing.Dependency.Coordinates.GroupAndArtifact(), missing.Bom))
	}

	m.versions = merged.Versions
	m.allExclusions.Merge(merged.Exclusions)
	m.bomProperties = merged.Properties
	return nil
}
