package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// pinnedDependency is the machine-output shape of one pinned declaration.
type pinnedDependency struct {
	Coordinates string   `yaml:"coordinates"`
	Exclusions  []string `yaml:"exclusions,omitempty"`
}

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the pinned dependency declarations without resolving boms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := cmd.Flags().GetString("configuration")
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}

			deps, err := c.app.Dependencies(configPath(cmd), configuration)
			if err != nil {
				return err
			}

			if output == "yaml" {
				return printYAML(cmd, convertDeps(deps))
			}
			for _, dep := range deps {
				line := dep.Coordinates.String()
				if len(dep.Exclusions) > 0 {
					line = fmt.Sprintf("%s (excludes %s)", line, strings.Join(exclusionNames(dep.Exclusions), ", "))
				}
				cmd.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().String("configuration", "", "Configuration scope (defaults to global)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or yaml)")
	return cmd
}

func convertDeps(deps []domain.Dependency) []pinnedDependency {
	out := make([]pinnedDependency, 0, len(deps))
	for _, dep := range deps {
		out = append(out, pinnedDependency{
			Coordinates: dep.Coordinates.String(),
			Exclusions:  exclusionNames(dep.Exclusions),
		})
	}
	return out
}

func exclusionNames(exclusions []domain.Exclusion) []string {
	if len(exclusions) == 0 {
		return nil
	}
	names := make([]string, 0, len(exclusions))
	for _, e := range exclusions {
		names = append(names, e.Group.String()+":"+e.Artifact.String())
	}
	return names
}

func printYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	cmd.Print(string(out))
	return nil
}
