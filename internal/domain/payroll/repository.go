package payroll

import "context"

// ConfigRepository defines data access for per-user payroll configs.
type ConfigRepository interface {
	Get(ctx context.Context, userID string) (Config, error)
	Upsert(ctx context.Context, cfg Config) (Config, error)
}
