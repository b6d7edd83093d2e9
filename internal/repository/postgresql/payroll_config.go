package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/database"
)

type payrollConfigRepositoryImpl struct {
	db *database.DB
}

func NewPayrollConfigRepository(db *database.DB) payroll.ConfigRepository {
	return &payrollConfigRepositoryImpl{db: db}
}

const payrollConfigColumns = `user_id, transport_allowance_enabled, transport_allowance_value,
	uvt_value, arl_risk_level, exoneration_enabled, dependents_enabled,
	medical_deduction, housing_interest_deduction, created_at, updated_at`

func scanPayrollConfig(row pgx.Row) (payroll.Config, error) {
	var cfg payroll.Config
	err := row.Scan(
		&cfg.UserID,
		&cfg.TransportAllowanceEnabled,
		&cfg.TransportAllowanceValue,
		&cfg.UVTValue,
		&cfg.ARLRiskLevel,
		&cfg.ExonerationEnabled,
		&cfg.DependentsEnabled,
		&cfg.MedicalDeduction,
		&cfg.HousingInterestDeduction,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	return cfg, err
}

func (r *payrollConfigRepositoryImpl) Get(ctx context.Context, userID string) (payroll.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollConfigColumns + ` FROM payroll_configs WHERE user_id = $1`

	cfg, err := scanPayrollConfig(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Config{}, payroll.ErrConfigNotFound
		}
		return payroll.Config{}, err
	}
	return cfg, nil
}

func (r *payrollConfigRepositoryImpl) Upsert(ctx context.Context, cfg payroll.Config) (payroll.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_configs (
			user_id, transport_allowance_enabled, transport_allowance_value,
			uvt_value, arl_risk_level, exoneration_enabled, dependents_enabled,
			medical_deduction, housing_interest_deduction
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			transport_allowance_enabled = EXCLUDED.transport_allowance_enabled,
			transport_allowance_value = EXCLUDED.transport_allowance_value,
			uvt_value = EXCLUDED.uvt_value,
			arl_risk_level = EXCLUDED.arl_risk_level,
			exoneration_enabled = EXCLUDED.exoneration_enabled,
			dependents_enabled = EXCLUDED.dependents_enabled,
			medical_deduction = EXCLUDED.medical_deduction,
			housing_interest_deduction = EXCLUDED.housing_interest_deduction,
			updated_at = NOW()
		RETURNING ` + payrollConfigColumns

	saved, err := scanPayrollConfig(q.QueryRow(ctx, query,
		cfg.UserID,
		cfg.TransportAllowanceEnabled,
		cfg.TransportAllowanceValue,
		cfg.UVTValue,
		cfg.ARLRiskLevel,
		cfg.ExonerationEnabled,
		cfg.DependentsEnabled,
		cfg.MedicalDeduction,
		cfg.HousingInterestDeduction,
	))
	if err != nil {
		return payroll.Config{}, err
	}
	return saved, nil
}
