package cli

import (
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the loaded catalog as YAML",
		Long: `Print the catalog after environment overrides are applied, as YAML with
families and endpoints sorted by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			return c.Encode(cmd.OutOrStdout())
		},
	}

	return cmd
}
