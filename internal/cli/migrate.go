package cli

import (
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Create the storefront tables if they do not exist",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repository.Migrate(cmd.Context(), repos.DB); err != nil {
				return err
			}

			return writeResult(cmd, rootOpts.Format, map[string]string{"status": "migrated"}, "✓ Schema is up to date")
		},
	}
}
