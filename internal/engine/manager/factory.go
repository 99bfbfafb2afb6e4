package manager

import (
	"sort"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Factory builds declared Containers from loaded project files.
type Factory struct {
	resolvers ports.PomResolverFactory
	log       ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(resolvers ports.PomResolverFactory, log ports.Logger) *Factory {
	return &Factory{resolvers: resolvers, log: log}
}

// For builds a Container for the project and applies every declaration
// block: the global one plus one per configuration, in name order. The
// container's resolver is scoped to the project's repositories.
func (f *Factory) For(project *domain.Project) *Container {
	properties := project.PropertySource()
	resolver := f.resolvers.ForRepositories(project.Repositories)
	container := NewContainer(project.Name, resolver, properties, f.log)

	applyDeclarations(container.Global(), project.Global, properties)

	names := make([]string, 0, len(project.Configurations))
	for name := range project.Configurations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		applyDeclarations(container.Configuration(name), project.Configurations[name], properties)
	}

	return container
}

func applyDeclarations(mgr *Manager, decls domain.Declarations, properties domain.PropertySource) {
	for _, imported := range decls.Imports {
		mgr.ImportBom(imported, properties)
	}
	for _, dep := range decls.Dependencies {
		mgr.RecordExplicitVersion(dep.Coordinates.Identity(), dep.Coordinates.Version, dep.Exclusions)
	}
}
