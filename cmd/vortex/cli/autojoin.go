package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vortex"
)

func newAutojoinCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autojoin",
		Short: "Manage autojoin domains of a scope",
		Long: `Users whose email domain is listed for a scope can join it without an
explicit invitation. "set" replaces the whole list: domains left out are
removed, and an empty list turns autojoin off for the scope.`,
	}

	cmd.AddCommand(newAutojoinGetCmd(opts))
	cmd.AddCommand(newAutojoinSetCmd(opts))

	return cmd
}

func newAutojoinGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "get <scope-type> <scope>",
		Short:   "Show the autojoin domains of a scope",
		Example: `  vortex autojoin get organization org-123`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			out, err := client.GetAutojoinDomains(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("get autojoin domains: %w", err)
			}
			return opts.render(cmd, out)
		},
	}
}

func newAutojoinSetCmd(opts *globalOptions) *cobra.Command {
	var req vortex.ConfigureAutojoinRequest

	cmd := &cobra.Command{
		Use:   "set <scope-type> <scope>",
		Short: "Replace the autojoin domains of a scope",
		Example: `  vortex autojoin set organization org-123 --widget w_1 --domain acme.com --domain acme.io
  vortex autojoin set organization org-123 --widget w_1   # disable autojoin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ScopeType, req.Scope = args[0], args[1]

			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			out, err := client.ConfigureAutojoin(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("configure autojoin: %w", err)
			}
			return opts.render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&req.WidgetID, "widget", "", "Widget configuration ID (required)")
	cmd.Flags().StringVar(&req.ScopeName, "scope-name", "", "Display name of the scope")
	cmd.Flags().StringSliceVar(&req.Domains, "domain", nil, "Allowed email domain (repeatable)")
	_ = cmd.MarkFlagRequired("widget")

	return cmd
}
