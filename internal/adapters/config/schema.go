package config

// ProjectFile represents the structure of the pin.yaml project file.
type ProjectFile struct {
	Version              string                     `yaml:"version"`
	Project              string                     `yaml:"project"`
	Repositories         []string                   `yaml:"repositories"`
	Properties           map[string]string          `yaml:"properties"`
	DependencyManagement DeclarationsDTO            `yaml:"dependencyManagement"`
	Configurations       map[string]DeclarationsDTO `yaml:"configurations"`
}

// DeclarationsDTO represents one dependency-management block.
type DeclarationsDTO struct {
	Imports      []string        `yaml:"imports"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents an explicitly pinned dependency.
type DependencyDTO struct {
	Coordinates string   `yaml:"coordinates"`
	Exclusions  []string `yaml:"exclusions"`
}
