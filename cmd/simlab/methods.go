package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/wizenheimer/simlab"
)

func newMethodsCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "Describe the available similarity methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := simlab.GetMethodInfo()
			c.logger.Debug("listing methods", "count", len(info))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			newPrinter(cmd.OutOrStdout()).methods(info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
