// Package app implements the application layer for pin.
package app

import (
	"context"
	"sort"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/pin/internal/engine/manager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      *manager.Factory
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, factory *manager.Factory) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
	}
}

// Report is the full resolution result for one configuration scope.
type Report struct {
	Project       string             `yaml:"project"`
	Configuration string             `yaml:"configuration,omitempty"`
	Versions      []ManagedVersion   `yaml:"versions"`
	Exclusions    []ManagedExclusion `yaml:"exclusions,omitempty"`
	Properties    map[string]string  `yaml:"properties,omitempty"`
}

// ManagedVersion is one resolved group:artifact -> version entry.
type ManagedVersion struct {
	Group    string `yaml:"group"`
	Artifact string `yaml:"artifact"`
	Version  string `yaml:"version"`
}

// ManagedExclusion lists the exclusions attached to one managed identity.
type ManagedExclusion struct {
	Group    string   `yaml:"group"`
	Artifact string   `yaml:"artifact"`
	Excluded []string `yaml:"excluded"`
}

// Resolve loads the project file, resolves all imported boms for the given
// configuration scope and returns the effective dependency management.
// An empty configuration name selects the global scope.
func (a *App) Resolve(ctx context.Context, configPath, configuration string) (*Report, error) {
	project, container, err := a.load(configPath, configuration)
	if err != nil {
		return nil, err
	}

	versions, err := container.ManagedVersions(ctx, configuration)
	if err != nil {
		return nil, err
	}
	exclusions, err := container.Exclusions(ctx, configuration)
	if err != nil {
		return nil, err
	}
	properties, err := container.ImportedProperties(ctx, configuration)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Project:       project.Name,
		Configuration: configuration,
		Versions:      sortedVersions(versions),
		Properties:    properties,
	}
	all := exclusions.All()
	ids := make([]domain.Identity, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		names := make([]string, 0, len(all[id]))
		for _, e := range all[id] {
			names = append(names, e.Group.String()+":"+e.Artifact.String())
		}
		report.Exclusions = append(report.Exclusions, ManagedExclusion{
			Group:    id.Group.String(),
			Artifact: id.Artifact.String(),
			Excluded: names,
		})
	}
	return report, nil
}

// Version resolves the managed version for a single group:artifact identity.
// The second return value is false when no version is managed for it.
func (a *App) Version(ctx context.Context, configPath, configuration, groupAndArtifact string) (string, bool, error) {
	coords, err := domain.ParseCoordinates(groupAndArtifact)
	if err != nil {
		return "", false, err
	}

	_, container, err := a.load(configPath, configuration)
	if err != nil {
		return "", false, err
	}
	return container.ManagedVersion(ctx, configuration, coords.Identity())
}

// Dependencies returns the pinned dependency declarations for the given
// configuration scope, without resolving imported boms.
func (a *App) Dependencies(configPath, configuration string) ([]domain.Dependency, error) {
	_, container, err := a.load(configPath, configuration)
	if err != nil {
		return nil, err
	}
	return container.ManagedDependencies(configuration), nil
}

// Properties resolves the imported boms and returns the merged properties
// they contribute for the given configuration scope.
func (a *App) Properties(ctx context.Context, configPath, configuration string) (map[string]string, error) {
	_, container, err := a.load(configPath, configuration)
	if err != nil {
		return nil, err
	}
	return container.ImportedProperties(ctx, configuration)
}

// Configurations lists the configuration names declared by the project file.
func (a *App) Configurations(configPath string) ([]string, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	names := make([]string, 0, len(project.Configurations))
	for name := range project.Configurations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (a *App) load(configPath, configuration string) (*domain.Project, *manager.Container, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	if configuration != "" {
		if _, ok := project.Configurations[configuration]; !ok {
			return nil, nil, zerr.With(domain.ErrConfigurationNotFound, "configuration", configuration)
		}
	}

	return project, a.factory.For(project), nil
}

func sortedVersions(versions map[domain.Identity]string) []ManagedVersion {
	out := make([]ManagedVersion, 0, len(versions))
	for id, version := range versions {
		out = append(out, ManagedVersion{
			Group:    id.Group.String(),
			Artifact: id.Artifact.String(),
			Version:  version,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Artifact < out[j].Artifact
	})
	return out
}
