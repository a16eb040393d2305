package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [family]",
		Aliases: []string{"ls"},
		Short:   "List families or the endpoints of a family",
		Long: `Without arguments, list every family with its base URL. With a family
name, list its endpoints and their paths.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(w, "FAMILY\tBASE URL")
				for _, name := range c.Names() {
					family, err := a.family(c, name)
					if err != nil {
						return err
					}
					base := "<invalid>"
					if u := family.BaseURL(); u != nil {
						base = u.String()
					}
					fmt.Fprintf(w, "%s\t%s\n", name, base)
				}
				return w.Flush()
			}

			routes, err := c.Routes(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "ENDPOINT\tPATH")
			for _, r := range routes {
				fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Pattern)
			}
			return w.Flush()
		},
	}

	return cmd
}
