package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/user"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/service/salary"
)

type payrollService struct {
	configRepo  payroll.ConfigRepository
	userRepo    user.Repository
	workDayRepo workday.Repository
	salaryCalc  *salary.Calculator
	calculator  *Calculator
}

func NewPayrollService(
	configRepo payroll.ConfigRepository,
	userRepo user.Repository,
	workDayRepo workday.Repository,
	salaryCalc *salary.Calculator,
	calculator *Calculator,
) payroll.Service {
	return &payrollService{
		configRepo:  configRepo,
		userRepo:    userRepo,
		workDayRepo: workDayRepo,
		salaryCalc:  salaryCalc,
		calculator:  calculator,
	}
}

// loadConfig returns the user's payroll config, falling back to the
// current year's defaults when no row exists yet.
func (s *payrollService) loadConfig(ctx context.Context, userID string) (payroll.Config, error) {
	cfg, err := s.configRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, payroll.ErrConfigNotFound) {
			return payroll.DefaultConfig(userID), nil
		}
		return payroll.Config{}, err
	}
	return cfg, nil
}

func (s *payrollService) GetConfig(ctx context.Context, userID string) (payroll.ConfigResponse, error) {
	cfg, err := s.loadConfig(ctx, userID)
	if err != nil {
		return payroll.ConfigResponse{}, fmt.Errorf("get payroll config: %w", err)
	}
	return toConfigResponse(cfg), nil
}

func (s *payrollService) UpdateConfig(ctx context.Context, userID string, req payroll.UpdateConfigRequest) (payroll.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ConfigResponse{}, err
	}

	cfg, err := s.loadConfig(ctx, userID)
	if err != nil {
		return payroll.ConfigResponse{}, fmt.Errorf("load payroll config: %w", err)
	}

	if req.TransportAllowanceEnabled != nil {
		cfg.TransportAllowanceEnabled = *req.TransportAllowanceEnabled
	}
	if req.TransportAllowanceValue != nil {
		cfg.TransportAllowanceValue = *req.TransportAllowanceValue
	}
	if req.UVTValue != nil {
		cfg.UVTValue = *req.UVTValue
	}
	if req.ARLRiskLevel != nil {
		cfg.ARLRiskLevel = *req.ARLRiskLevel
	}
	if req.ExonerationEnabled != nil {
		cfg.ExonerationEnabled = *req.ExonerationEnabled
	}
	if req.DependentsEnabled != nil {
		cfg.DependentsEnabled = *req.DependentsEnabled
	}
	if req.MedicalDeduction != nil {
		cfg.MedicalDeduction = *req.MedicalDeduction
	}
	if req.HousingInterestDeduction != nil {
		cfg.HousingInterestDeduction = *req.HousingInterestDeduction
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		return payroll.ConfigResponse{}, fmt.Errorf("save payroll config: %w", err)
	}
	return toConfigResponse(saved), nil
}

// Payslip computes the month's payroll: the month's own regular pay
// combined with the previous month's surcharges, which are paid one
// cycle late.
func (s *payrollService) Payslip(ctx context.Context, userID string, year int, month time.Month) (payroll.PayslipResponse, error) {
	if month < time.January || month > time.December {
		return payroll.PayslipResponse{}, payroll.ErrInvalidMonth
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("load user: %w", err)
	}

	cfg, err := s.loadConfig(ctx, userID)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("load payroll config: %w", err)
	}

	// Full history in one snapshot: streak positions and the vacation
	// average depend on records outside the requested month.
	history, err := s.workDayRepo.ListByUser(ctx, userID)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("load work days: %w", err)
	}

	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	currentMonth := s.salaryCalc.FilterByMonth(history, ref)
	previousMonth := s.salaryCalc.FilterByMonth(history, ref.AddDate(0, -1, 0))

	summary := s.salaryCalc.MonthlySummary(currentMonth, u.BaseSalary)
	surcharges := s.salaryCalc.SurchargesOnly(previousMonth, u.BaseSalary)

	calc := s.calculator.Calculate(u.BaseSalary, summary.TotalRegularPay, surcharges.TotalSurcharges, cfg)

	return toPayslipResponse(ref, calc), nil
}

func toConfigResponse(cfg payroll.Config) payroll.ConfigResponse {
	return payroll.ConfigResponse{
		TransportAllowanceEnabled: cfg.TransportAllowanceEnabled,
		TransportAllowanceValue:   cfg.TransportAllowanceValue,
		UVTValue:                  cfg.UVTValue,
		ARLRiskLevel:              cfg.ARLRiskLevel,
		ExonerationEnabled:        cfg.ExonerationEnabled,
		DependentsEnabled:         cfg.DependentsEnabled,
		MedicalDeduction:          cfg.MedicalDeduction,
		HousingInterestDeduction:  cfg.HousingInterestDeduction,
	}
}

func toPayslipResponse(ref time.Time, calc payroll.Calculation) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		Month: ref.Format("2006-01"),

		BaseSalary:         calc.BaseSalary,
		RegularPay:         calc.RegularPay,
		Surcharges:         calc.Surcharges,
		TransportAllowance: calc.TransportAllowance,
		TotalEarnings:      calc.TotalEarnings,

		IBC: calc.IBC,

		HealthDeduction:  calc.HealthDeduction,
		PensionDeduction: calc.PensionDeduction,
		FSPDeduction:     calc.FSPDeduction,
		WithholdingTax:   calc.WithholdingTax,
		TotalDeductions:  calc.TotalDeductions,
		Withholding: payroll.WithholdingTrailResponse{
			GrossIncome:       calc.Withholding.GrossIncome,
			DeductionsApplied: calc.Withholding.DeductionsApplied,
			ExemptAmount:      calc.Withholding.ExemptAmount,
			TaxableBaseUVT:    calc.Withholding.TaxableBaseUVT,
			BracketRate:       calc.Withholding.BracketRate,
		},

		PrimaProvision:     calc.PrimaProvision,
		CesantiasProvision: calc.CesantiasProvision,
		CesantiasInterest:  calc.CesantiasInterest,
		VacationProvision:  calc.VacationProvision,

		EmployerHealth:   calc.EmployerHealth,
		EmployerPension:  calc.EmployerPension,
		EmployerARL:      calc.EmployerARL,
		CajaContribution: calc.CajaContribution,
		SENAContribution: calc.SENAContribution,
		ICBFContribution: calc.ICBFContribution,

		NetPay: calc.NetPay,
	}
}
