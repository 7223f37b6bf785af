package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vortex"
)

func newTokenCmd(opts *globalOptions) *cobra.Command {
	var (
		user   vortex.User
		claims []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a widget token for a user",
		Long: `Sign a widget token locally with the API key. No request is made.

Extra claims are merged into the payload last and override generated ones.
Values that parse as JSON keep their type, anything else is a string.`,
		Example: `  vortex token --user-id u1 --email u1@example.com
  vortex token --user-id u1 --admin-scope autojoin --claim plan=pro --claim seats=5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseClaims(claims)
			if err != nil {
				return err
			}

			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			token, err := client.GenerateToken(user, extra)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user.ID, "user-id", "", "Your identifier for the user (required)")
	cmd.Flags().StringVar(&user.Email, "email", "", "User email")
	cmd.Flags().StringVar(&user.Name, "name", "", "User display name")
	cmd.Flags().StringVar(&user.AvatarURL, "avatar-url", "", "User avatar URL")
	cmd.Flags().StringSliceVar(&user.AdminScopes, "admin-scope", nil, "Admin scope granted to the user (repeatable)")
	cmd.Flags().StringArrayVar(&claims, "claim", nil, "Extra claim as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

// parseClaims turns key=value pairs into a claims map.
func parseClaims(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	claims := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid claim %q: expected key=value", pair)
		}

		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			claims[key] = decoded
		} else {
			claims[key] = value
		}
	}
	return claims, nil
}
