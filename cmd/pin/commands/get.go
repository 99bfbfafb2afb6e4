package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <group:artifact>",
		Short: "Print the managed version for a single artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, err := cmd.Flags().GetString("configuration")
			if err != nil {
				return err
			}

			version, ok, err := c.app.Version(cmd.Context(), configPath(cmd), configuration, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no managed version for %s", args[0])
			}
			cmd.Println(version)
			return nil
		},
	}
	cmd.Flags().String("configuration", "", "Configuration scope (defaults to global)")
	return cmd
}
