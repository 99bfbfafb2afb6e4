package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve imported boms and print the effective dependency management",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := cmd.Flags().GetString("configuration")
			if err != nil {
				return err
			}

			report, err := c.app.Resolve(cmd.Context(), configPath(cmd), configuration)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}
	cmd.Flags().String("configuration", "", "Configuration scope (defaults to global)")
	return cmd
}
