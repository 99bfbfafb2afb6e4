package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigurationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configurations",
		Short: "List the configuration names declared by the project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.app.Configurations(configPath(cmd))
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}
