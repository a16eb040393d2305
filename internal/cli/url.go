package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kbukum/endpointkit/catalog"
	"github.com/kbukum/endpointkit/endpoint"
)

func newURLCmd(a *app) *cobra.Command {
	var (
		opts      []string
		templates []string
	)

	cmd := &cobra.Command{
		Use:   "url <family> <endpoint>",
		Short: "Print the URL of an endpoint",
		Long: `Print the URL of an endpoint of a catalog family.

Query options are appended in the order given. Template values replace
{name} placeholders in the endpoint path.

Examples:
  endpointctl url movies top_rated
  endpointctl url movies top_rated --opt region=en-US --opt page=1
  endpointctl url local item --template id=42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			family, err := a.family(c, args[0])
			if err != nil {
				return err
			}
			route, err := c.Route(args[0], args[1])
			if err != nil {
				return err
			}
			options, err := catalog.ParseOptions(opts)
			if err != nil {
				return err
			}
			params, err := catalog.ParseParams(templates)
			if err != nil {
				return err
			}

			u, err := build(func() (*url.URL, error) {
				if len(params) > 0 {
					return family.BuildCustomURL(route, endpoint.ExpandPath(params), options...)
				}
				return family.BuildURL(route, options...)
			})
			if err != nil {
				return fmt.Errorf("building URL for %s %s: %w", args[0], args[1], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts, "opt", "q", nil, "query option name=value (repeatable)")
	cmd.Flags().StringArrayVarP(&templates, "template", "t", nil, "path template value name=value (repeatable)")

	return cmd
}

func newBaseCmd(a *app) *cobra.Command {
	var opts []string

	cmd := &cobra.Command{
		Use:   "base <family>",
		Short: "Print the base URL of a family",
		Long: `Print the base URL of a catalog family: scheme, host, port and base path.

Examples:
  endpointctl base movies
  endpointctl base movies --opt page=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			family, err := a.family(c, args[0])
			if err != nil {
				return err
			}
			options, err := catalog.ParseOptions(opts)
			if err != nil {
				return err
			}

			u, err := build(func() (*url.URL, error) {
				return family.BuildBaseURL(options...)
			})
			if err != nil {
				return fmt.Errorf("building base URL for %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts, "opt", "q", nil, "query option name=value (repeatable)")

	return cmd
}
