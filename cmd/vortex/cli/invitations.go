package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vortex"
)

func newInvitationsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invitations",
		Aliases: []string{"invitation", "inv"},
		Short:   "Manage invitations",
	}

	cmd.AddCommand(newInvitationsGetCmd(opts))
	cmd.AddCommand(newInvitationsListCmd(opts))
	cmd.AddCommand(newInvitationsRevokeCmd(opts))
	cmd.AddCommand(newInvitationsReinviteCmd(opts))
	cmd.AddCommand(newInvitationsAcceptCmd(opts))
	cmd.AddCommand(newInvitationsCreateCmd(opts))

	return cmd
}

// ---------- invitations get ----------

func newInvitationsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <invitation-id>",
		Short: "Show one invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			inv, err := client.GetInvitation(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get invitation: %w", err)
			}
			return opts.render(cmd, inv)
		},
	}
}

// ---------- invitations list ----------

func newInvitationsListCmd(opts *globalOptions) *cobra.Command {
	var targetType, targetValue string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List invitations sent to a target",
		Example: `  vortex invitations list --target-type email --target-value jane@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			list, err := client.GetInvitationsByTarget(cmd.Context(), vortex.TargetType(targetType), targetValue)
			if err != nil {
				return fmt.Errorf("list invitations: %w", err)
			}
			if list == nil {
				list = []vortex.Invitation{}
			}
			return opts.render(cmd, list)
		},
	}

	cmd.Flags().StringVar(&targetType, "target-type", "", "Target type: email, phone, share or internal (required)")
	cmd.Flags().StringVar(&targetValue, "target-value", "", "Target value, e.g. an email address (required)")
	_ = cmd.MarkFlagRequired("target-type")
	_ = cmd.MarkFlagRequired("target-value")

	return cmd
}

// ---------- invitations revoke ----------

func newInvitationsRevokeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "revoke <invitation-id>",
		Aliases: []string{"delete"},
		Short:   "Revoke an invitation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.RevokeInvitation(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("revoke invitation: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invitation %s revoked\n", args[0])
			return nil
		},
	}
}

// ---------- invitations reinvite ----------

func newInvitationsReinviteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reinvite <invitation-id>",
		Short: "Send an invitation again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			inv, err := client.Reinvite(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reinvite: %w", err)
			}
			return opts.render(cmd, inv)
		},
	}
}

// ---------- invitations accept ----------

func newInvitationsAcceptCmd(opts *globalOptions) *cobra.Command {
	var user vortex.AcceptUser

	cmd := &cobra.Command{
		Use:   "accept <invitation-id>...",
		Short: "Accept invitations on behalf of a user",
		Long:  "Mark one or more invitations as accepted. --email or --phone identifies the user.",
		Example: `  vortex invitations accept inv_1 inv_2 --email jane@example.com --name Jane
  vortex invitations accept inv_1 --phone +15550001111`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			inv, err := client.AcceptInvitations(cmd.Context(), args, user)
			if err != nil {
				return fmt.Errorf("accept invitations: %w", err)
			}
			return opts.render(cmd, inv)
		},
	}

	cmd.Flags().StringVar(&user.Email, "email", "", "Email of the accepting user")
	cmd.Flags().StringVar(&user.Phone, "phone", "", "Phone number of the accepting user")
	cmd.Flags().StringVar(&user.Name, "name", "", "Display name of the accepting user")
	cmd.MarkFlagsOneRequired("email", "phone")

	return cmd
}

// ---------- invitations create ----------

func newInvitationsCreateCmd(opts *globalOptions) *cobra.Command {
	var (
		req        vortex.CreateInvitationRequest
		targetType string
		groups     []string
		source     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create and send an invitation",
		Example: `  vortex invitations create --widget w_1 --target-type email --target-value jane@example.com \
    --inviter-id u1 --group team:team-1:"Team One"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Target.Type = vortex.TargetType(targetType)
			req.Source = source
			for _, g := range groups {
				group, err := parseGroup(g)
				if err != nil {
					return err
				}
				req.Groups = append(req.Groups, group)
			}

			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.CreateInvitation(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create invitation: %w", err)
			}
			return opts.render(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&req.WidgetConfigurationID, "widget", "", "Widget configuration ID (required)")
	cmd.Flags().StringVar(&targetType, "target-type", "email", "Target type: email, phone or internal")
	cmd.Flags().StringVar(&req.Target.Value, "target-value", "", "Recipient, e.g. an email address (required)")
	cmd.Flags().StringVar(&req.Inviter.UserID, "inviter-id", "", "Your identifier for the inviting user (required)")
	cmd.Flags().StringVar(&req.Inviter.UserEmail, "inviter-email", "", "Email of the inviting user")
	cmd.Flags().StringVar(&req.Inviter.Name, "inviter-name", "", "Display name of the inviting user")
	cmd.Flags().StringArrayVar(&groups, "group", nil, "Group as type:id[:name] (repeatable)")
	cmd.Flags().StringVar(&source, "source", "", "Source tag recorded with the invitation")
	_ = cmd.MarkFlagRequired("widget")
	_ = cmd.MarkFlagRequired("target-value")
	_ = cmd.MarkFlagRequired("inviter-id")

	return cmd
}

// parseGroup parses "type:id" or "type:id:name".
func parseGroup(s string) (vortex.CreateInvitationGroup, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return vortex.CreateInvitationGroup{}, fmt.Errorf("invalid group %q: expected type:id[:name]", s)
	}

	group := vortex.CreateInvitationGroup{Type: parts[0], GroupID: parts[1]}
	if len(parts) == 3 {
		group.Name = parts[2]
	}
	return group, nil
}
