package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/endpointkit/version"
)

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the endpointctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch output {
			case "", "text":
				fmt.Fprintf(cmd.OutOrStdout(), "endpointctl %s\n", info)
				return nil
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(info); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown output format %q (use text or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")

	return cmd
}
