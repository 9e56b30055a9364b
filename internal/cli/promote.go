package cli

import (
	"errors"
	"fmt"
	"strings"

	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/spf13/cobra"
)

type promoteOptions struct {
	revoke bool
}

// NewPromoteAdminCommand creates the promote-admin command. It is the only
// way to create the first admin, since the console refuses self-promotion.
func NewPromoteAdminCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &promoteOptions{}

	cmd := &cobra.Command{
		Use:          "promote-admin <email>",
		Short:        "Grant or revoke admin rights for a user",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))

			repos, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer repos.Close()

			isAdmin := !opts.revoke

			if err := repos.User.SetAdminByEmail(cmd.Context(), email, isAdmin); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no user registered with email %q", email)
				}
				return err
			}

			verb := "granted to"
			if opts.revoke {
				verb = "revoked from"
			}

			return writeResult(cmd, rootOpts.Format,
				map[string]any{"email": email, "is_admin": isAdmin},
				fmt.Sprintf("✓ Admin rights %s %s", verb, email))
		},
	}

	cmd.Flags().BoolVar(&opts.revoke, "revoke", false, "remove admin rights instead of granting them")

	return cmd
}
