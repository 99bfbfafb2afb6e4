// Package config provides the pin.yaml project file loader.
package config

import (
	"os"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CentralRepository is the repository used when the project declares none.
const CentralRepository = "https://repo.maven.apache.org/maven2"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the project file at the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Project, error) {
	return Load(path)
}

// Load reads a project file from the given path and returns a domain.Project.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}

	project := &domain.Project{
		Name:           file.Project,
		Repositories:   file.Repositories,
		Properties:     file.Properties,
		Configurations: make(map[string]domain.Declarations),
	}
	if project.Name == "" {
		return nil, zerr.With(zerr.New("project file must declare a project name"), "path", path)
	}
	if len(project.Repositories) == 0 {
		project.Repositories = []string{CentralRepository}
	}
	if project.Properties == nil {
		project.Properties = make(map[string]string)
	}

	global, err := convertDeclarations(file.DependencyManagement, "dependencyManagement")
	if err != nil {
		return nil, err
	}
	project.Global = global

	for name, dto := range file.Configurations {
		decls, err := convertDeclarations(dto, name)
		if err != nil {
			return nil, err
		}
		project.Configurations[name] = decls
	}

	return project, nil
}

func convertDeclarations(dto DeclarationsDTO, scope string) (domain.Declarations, error) {
	var decls domain.Declarations

	for _, imported := range dto.Imports {
		coords, err := domain.ParseCoordinates(imported)
		if err != nil {
			return domain.Declarations{}, zerr.With(err, "scope", scope)
		}
		// Placeholders are fine here; the version itself must be present.
		if !coords.HasVersion() {
			return domain.Declarations{}, zerr.With(
				zerr.New("bom import must declare a version"), "coordinates", imported)
		}
		decls.Imports = append(decls.Imports, coords)
	}

	for _, dep := range dto.Dependencies {
		coords, err := domain.ParseCoordinates(dep.Coordinates)
		if err != nil {
			return domain.Declarations{}, zerr.With(err, "scope", scope)
		}
		if !coords.HasVersion() {
			return domain.Declarations{}, zerr.With(
				zerr.New("pinned dependency must declare a version"), "coordinates", dep.Coordinates)
		}
		exclusions, err := convertExclusions(dep.Exclusions)
		if err != nil {
			return domain.Declarations{}, zerr.With(err, "scope", scope)
		}
		decls.Dependencies = append(decls.Dependencies, domain.Dependency{
			Coordinates: coords,
			Exclusions:  exclusions,
		})
	}

	return decls, nil
}

func convertExclusions(raw []string) ([]domain.Exclusion, error) {
	exclusions := make([]domain.Exclusion, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return nil, zerr.With(domain.ErrMalformedCoordinates, "exclusion", s)
		}
		exclusions = append(exclusions, domain.NewExclusion(parts[0], parts[1]))
	}
	return exclusions, nil
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)
