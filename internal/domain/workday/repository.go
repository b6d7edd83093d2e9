package workday

import (
	"context"
	"time"
)

// Repository defines data access for work days. Every method scopes by
// userID so one user can never touch another user's records.
type Repository interface {
	Create(ctx context.Context, wd WorkDay) (WorkDay, error)
	CreateBatch(ctx context.Context, days []WorkDay) ([]WorkDay, error)
	GetByID(ctx context.Context, id string, userID string) (WorkDay, error)
	// ListByUser returns the user's complete work-day history in
	// ascending date order. Streak- and average-dependent calculations
	// need the full snapshot, not a page.
	ListByUser(ctx context.Context, userID string) ([]WorkDay, error)
	ListByUserMonth(ctx context.Context, userID string, year int, month time.Month) ([]WorkDay, error)
	Update(ctx context.Context, wd WorkDay) (WorkDay, error)
	Delete(ctx context.Context, id string, userID string) error
}
