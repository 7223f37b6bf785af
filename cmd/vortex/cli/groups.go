package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vortex"
)

func newGroupsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage invitations attached to your groups",
	}

	cmd.AddCommand(newGroupsListCmd(opts))
	cmd.AddCommand(newGroupsDeleteCmd(opts))

	return cmd
}

func newGroupsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list <group-type> <group-id>",
		Short:   "List invitations of a group",
		Example: `  vortex groups list team team-1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			list, err := client.GetInvitationsByGroup(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("list group invitations: %w", err)
			}
			if list == nil {
				list = []vortex.Invitation{}
			}
			return opts.render(cmd, list)
		},
	}
}

func newGroupsDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group-type> <group-id>",
		Short: "Delete every invitation of a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteInvitationsByGroup(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("delete group invitations: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invitations of %s %s deleted\n", args[0], args[1])
			return nil
		},
	}
}
