package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newPropsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "props",
		Short: "Print the properties contributed by imported boms",
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

			properties, err := c.app.Properties(cmd.Context(), configPath(cmd), configuration)
			if err != nil {
				return err
			}

			if output == "yaml" {
				return printYAML(cmd, properties)
			}

			names := make([]string, 0, len(properties))
			for name := range properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cmd.Println(fmt.Sprintf("%s=%s", name, properties[name]))
			}
			return nil
		},
	}
	cmd.Flags().String("configuration", "", "Configuration scope (defaults to global)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or yaml)")
	return cmd
}
