package cli

import (
	"fmt"

	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command, the terminal twin of the
// admin dashboard totals.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "stats",
		Short:        "Print revenue, order, product and user totals",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer repos.Close()

			// stats never touches the catalog cache
			admin := service.NewAdminService(repos.Product, repos.User, repos.Order, nil)

			stats, err := admin.Stats(cmd.Context())
			if err != nil {
				return err
			}

			text := fmt.Sprintf("Revenue:  %s\nOrders:   %d\nProducts: %d\nUsers:    %d",
				stats.TotalRevenue.StringFixed(2), stats.TotalOrders, stats.TotalProducts, stats.TotalUsers)

			return writeResult(cmd, rootOpts.Format, stats, text)
		},
	}
}
