package workday

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, userID string, req CreateWorkDayRequest) (CalculationResponse, error)
	BulkCreate(ctx context.Context, userID string, req BulkCreateWorkDaysRequest) ([]CalculationResponse, error)
	Update(ctx context.Context, userID string, req UpdateWorkDayRequest) (CalculationResponse, error)
	Delete(ctx context.Context, userID string, id string) error
	ListMonth(ctx context.Context, userID string, year int, month time.Month) (ListCalculationsResponse, error)
	MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (MonthlySummaryResponse, error)
	MonthlySurcharges(ctx context.Context, userID string, year int, month time.Month) (SurchargesSummaryResponse, error)
}
