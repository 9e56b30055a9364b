package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	stripeClient "github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentName = "storefront"

// Endpoints holds the optional dependencies checked beyond Postgres and Redis.
type Endpoints struct {
	StripeClient stripeClient.Client
}

func checks(cfg *config.Config, endpoints *Endpoints) []health.Config {
	list := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	// Stripe is only a dependency when checkout links go through it.
	if endpoints != nil && endpoints.StripeClient != nil {
		client := endpoints.StripeClient
		list = append(list, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				return client.Ping(ctx)
			},
		})
	}

	return list
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks(cfg, endpoints)...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
