package payroll

import (
	"context"
	"time"
)

type Service interface {
	GetConfig(ctx context.Context, userID string) (ConfigResponse, error)
	UpdateConfig(ctx context.Context, userID string, req UpdateConfigRequest) (ConfigResponse, error)
	// Payslip computes the full payroll for the month containing ref:
	// that month's regular pay plus the previous month's surcharges.
	Payslip(ctx context.Context, userID string, year int, month time.Month) (PayslipResponse, error)
}
