// Package cli implements storefrontctl, the operator tool that runs schema
// migrations, grants admin rights and prints store statistics.
package cli

import (
	"fmt"
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every command.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"

	// Open connects to the store. Tests replace it with a mocked database.
	Open func(cfg *config.Config) (*repository.Repository, error)
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the storefrontctl root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Open: repository.New})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefrontctl",
		Short: "Operate the storefront database",
		Long:  "Operator commands for the storefront: schema migration, admin promotion and store statistics.",
		// main prints the returned error once
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the config file (defaults to $CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewPromoteAdminCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// connect loads the config named by --config or CONFIG_PATH and opens the store.
func (o *RootOptions) connect() (*repository.Repository, error) {
	path := o.ConfigPath
	if path == "" {
		path = config.PathFromEnv()
	}

	if path == "" {
		return nil, fmt.Errorf("config path is not set: use --config or CONFIG_PATH")
	}

	cfg, err := config.LoadConfigFromPath(path)
	if err != nil {
		return nil, err
	}

	return o.Open(cfg)
}
