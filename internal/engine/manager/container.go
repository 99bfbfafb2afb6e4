package manager

import (
	"context"
	"maps"
	"sort"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Container owns the global Manager and the per-configuration Managers of a
// project. Configuration queries fall back to global management when the
// configuration itself has no answer.
type Container struct {
	project    string
	resolver   ports.PomResolver
	properties domain.PropertySource
	log        ports.Logger

	global           *Manager
	byConfiguration  map[string]*Manager
	configurationSet []string
}

// NewContainer creates a Container with an empty global Manager.
func NewContainer(project string, resolver ports.PomResolver, properties domain.PropertySource, log ports.Logger) *Container {
	return &Container{
		project:         project,
		resolver:        resolver,
		properties:      properties,
		log:             log,
		global:          New(project, "", resolver, properties, log),
		byConfiguration: make(map[string]*Manager),
	}
}

// Global returns the project-wide Manager.
func (c *Container) Global() *Manager {
	return c.global
}

// Configuration returns the Manager for the named configuration, creating it
// on first use.
func (c *Container) Configuration(name string) *Manager {
	if mgr, ok := c.byConfiguration[name]; ok {
		return mgr
	}
	mgr := New(c.project, name, c.resolver, c.properties, c.log)
	c.byConfiguration[name] = mgr
	c.configurationSet = append(c.configurationSet, name)
	return mgr
}

// HasConfiguration reports whether a Manager exists for the named
// configuration.
func (c *Container) HasConfiguration(name string) bool {
	_, ok := c.byConfiguration[name]
	return ok
}

// ConfigurationNames returns the known configuration names, sorted.
func (c *Container) ConfigurationNames() []string {
	names := make([]string, len(c.configurationSet))
	copy(names, c.configurationSet)
	sort.Strings(names)
	return names
}

// scopeFor returns the Manager for name, or the global Manager when name is
// empty.
func (c *Container) scopeFor(name string) *Manager {
	if name == "" {
		return c.global
	}
	return c.Configuration(name)
}

// ManagedVersion returns the managed version for id in the named
// configuration, consulting global management when the configuration does
// not manage the identity.
func (c *Container) ManagedVersion(ctx context.Context, configuration string, id domain.Identity) (string, bool, error) {
	if configuration != "" {
		version, ok, err := c.Configuration(configuration).ManagedVersion(ctx, id)
		if err != nil {
			return "", false, err
		}
		if ok {
			return version, true, nil
		}
	}
	return c.global.ManagedVersion(ctx, id)
}

// ManagedVersions returns the effective version map for the named
// configuration: global management overlaid with the configuration's own.
func (c *Container) ManagedVersions(ctx context.Context, configuration string) (map[domain.Identity]string, error) {
	versions, err := c.global.ManagedVersions(ctx)
	if err != nil {
		return nil, err
	}
	if configuration == "" {
		return versions, nil
	}
	scoped, err := c.Configuration(configuration).ManagedVersions(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(versions, scoped)
	return versions, nil
}

// Exclusions returns the union of global and configuration exclusions.
func (c *Container) Exclusions(ctx context.Context, configuration string) (*domain.Exclusions, error) {
	merged := domain.NewExclusions()
	global, err := c.global.Exclusions(ctx)
	if err != nil {
		return nil, err
	}
	merged.Merge(global)
	if configuration != "" {
		scoped, err := c.Configuration(configuration).Exclusions(ctx)
		if err != nil {
			return nil, err
		}
		merged.Merge(scoped)
	}
	return merged, nil
}

// ImportedProperties returns the bom property table for the named
// configuration, with configuration-level imports overriding global ones.
func (c *Container) ImportedProperties(ctx context.Context, configuration string) (map[string]string, error) {
	props, err := c.global.ImportedProperties(ctx)
	if err != nil {
		return nil, err
	}
	if configuration == "" {
		return props, nil
	}
	scoped, err := c.Configuration(configuration).ImportedProperties(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(props, scoped)
	return props, nil
}

// ManagedDependencies returns the explicitly declared dependencies for the
// scope, global ones first.
func (c *Container) ManagedDependencies(configuration string) []domain.Dependency {
	deps := c.global.ManagedDependencies()
	if configuration != "" {
		deps = append(deps, c.Configuration(configuration).ManagedDependencies()...)
	}
	return deps
}
