package workday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/calendar"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/user"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
	"github.com/andresaoe/mi-jornada-calculada/internal/service/salary"
)

// maxBulkRangeDays caps a bulk insert at one quarter of consecutive
// dates.
const maxBulkRangeDays = 92

type workDayService struct {
	workDayRepo workday.Repository
	userRepo    user.Repository
	calculator  *salary.Calculator
}

func NewWorkDayService(workDayRepo workday.Repository, userRepo user.Repository, calculator *salary.Calculator) workday.Service {
	return &workDayService{
		workDayRepo: workDayRepo,
		userRepo:    userRepo,
		calculator:  calculator,
	}
}

func (s *workDayService) Create(ctx context.Context, userID string, req workday.CreateWorkDayRequest) (workday.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.CalculationResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	wd := workday.WorkDay{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         date,
		ShiftType:    laborlaw.ShiftType(req.ShiftType),
		RegularHours: req.RegularHours,
		ExtraHours:   req.ExtraHours,
		IsHoliday:    calendar.IsHolidayOrSunday(date),
		Notes:        req.Notes,
	}

	created, err := s.workDayRepo.Create(ctx, wd)
	if err != nil {
		return workday.CalculationResponse{}, fmt.Errorf("create work day: %w", err)
	}

	return s.calculate(ctx, userID, created)
}

func (s *workDayService) BulkCreate(ctx context.Context, userID string, req workday.BulkCreateWorkDaysRequest) ([]workday.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	if end.Before(start) {
		return nil, workday.ErrInvalidDateRange
	}
	rangeDays := int(end.Sub(start).Hours()/24) + 1
	if rangeDays > maxBulkRangeDays {
		return nil, workday.ErrDateRangeTooLarge
	}

	days := make([]workday.WorkDay, 0, rangeDays)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		days = append(days, workday.WorkDay{
			ID:           uuid.NewString(),
			UserID:       userID,
			Date:         date,
			ShiftType:    laborlaw.ShiftType(req.ShiftType),
			RegularHours: req.RegularHours,
			ExtraHours:   req.ExtraHours,
			IsHoliday:    calendar.IsHolidayOrSunday(date),
			Notes:        req.Notes,
		})
	}

	created, err := s.workDayRepo.CreateBatch(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("create work days: %w", err)
	}

	u, history, err := s.loadContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]workday.CalculationResponse, 0, len(created))
	for _, wd := range created {
		calc := s.calculator.CalculateWorkDay(wd, u.BaseSalary, history)
		responses = append(responses, toCalculationResponse(calc))
	}
	return responses, nil
}

func (s *workDayService) Update(ctx context.Context, userID string, req workday.UpdateWorkDayRequest) (workday.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.CalculationResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	existing, err := s.workDayRepo.GetByID(ctx, req.ID, userID)
	if err != nil {
		return workday.CalculationResponse{}, fmt.Errorf("get work day: %w", err)
	}

	existing.Date = date
	existing.ShiftType = laborlaw.ShiftType(req.ShiftType)
	existing.RegularHours = req.RegularHours
	existing.ExtraHours = req.ExtraHours
	existing.IsHoliday = calendar.IsHolidayOrSunday(date)
	existing.Notes = req.Notes

	updated, err := s.workDayRepo.Update(ctx, existing)
	if err != nil {
		return workday.CalculationResponse{}, fmt.Errorf("update work day: %w", err)
	}

	return s.calculate(ctx, userID, updated)
}

func (s *workDayService) Delete(ctx context.Context, userID string, id string) error {
	if err := s.workDayRepo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete work day: %w", err)
	}
	return nil
}

func (s *workDayService) ListMonth(ctx context.Context, userID string, year int, month time.Month) (workday.ListCalculationsResponse, error) {
	u, history, err := s.loadContext(ctx, userID)
	if err != nil {
		return workday.ListCalculationsResponse{}, err
	}

	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthDays := s.calculator.FilterByMonth(history, ref)

	data := make([]workday.CalculationResponse, 0, len(monthDays))
	for _, wd := range monthDays {
		calc := s.calculator.CalculateWorkDay(wd, u.BaseSalary, history)
		data = append(data, toCalculationResponse(calc))
	}

	resp := workday.ListCalculationsResponse{Data: data}
	if !calendar.YearSupported(year) {
		warning := fmt.Sprintf("variable holidays for %d are not loaded; only fixed holidays are detected", year)
		resp.HolidayWarning = &warning
	}
	return resp, nil
}

func (s *workDayService) MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (workday.MonthlySummaryResponse, error) {
	u, history, err := s.loadContext(ctx, userID)
	if err != nil {
		return workday.MonthlySummaryResponse{}, err
	}

	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	summary := s.calculator.MonthlySummary(s.calculator.FilterByMonth(history, ref), u.BaseSalary)

	return workday.MonthlySummaryResponse{
		Month:                     ref.Format("2006-01"),
		TotalRegularPay:           summary.TotalRegularPay,
		TotalNightSurcharge:       summary.TotalNightSurcharge,
		TotalSundayNightSurcharge: summary.TotalSundayNightSurcharge,
		TotalHolidaySurcharge:     summary.TotalHolidaySurcharge,
		TotalExtraHoursPay:        summary.TotalExtraHoursPay,
		TotalPay:                  summary.TotalPay,
		DaysWorked:                summary.DaysWorked,
		TotalHours:                summary.TotalHours,
	}, nil
}

func (s *workDayService) MonthlySurcharges(ctx context.Context, userID string, year int, month time.Month) (workday.SurchargesSummaryResponse, error) {
	u, history, err := s.loadContext(ctx, userID)
	if err != nil {
		return workday.SurchargesSummaryResponse{}, err
	}

	ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	summary := s.calculator.SurchargesOnly(s.calculator.FilterByMonth(history, ref), u.BaseSalary)

	return workday.SurchargesSummaryResponse{
		Month:                     ref.Format("2006-01"),
		TotalNightSurcharge:       summary.TotalNightSurcharge,
		TotalSundayNightSurcharge: summary.TotalSundayNightSurcharge,
		TotalHolidaySurcharge:     summary.TotalHolidaySurcharge,
		TotalExtraHoursPay:        summary.TotalExtraHoursPay,
		TotalSurcharges:           summary.TotalSurcharges,
	}, nil
}

// loadContext fetches the user and the full work-day history every
// calculation needs.
func (s *workDayService) loadContext(ctx context.Context, userID string) (user.User, []workday.WorkDay, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("load user: %w", err)
	}
	history, err := s.workDayRepo.ListByUser(ctx, userID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("load work days: %w", err)
	}
	return u, history, nil
}

func (s *workDayService) calculate(ctx context.Context, userID string, wd workday.WorkDay) (workday.CalculationResponse, error) {
	u, history, err := s.loadContext(ctx, userID)
	if err != nil {
		return workday.CalculationResponse{}, err
	}
	calc := s.calculator.CalculateWorkDay(wd, u.BaseSalary, history)
	return toCalculationResponse(calc), nil
}

func toCalculationResponse(calc workday.Calculation) workday.CalculationResponse {
	resp := workday.CalculationResponse{
		ID:                   calc.ID,
		Date:                 calc.Date.Format("2006-01-02"),
		ShiftType:            string(calc.ShiftType),
		RegularHours:         calc.RegularHours,
		ExtraHours:           calc.ExtraHours,
		IsHoliday:            calc.IsHoliday,
		Notes:                calc.Notes,
		RegularPay:           calc.RegularPay,
		NightSurcharge:       calc.NightSurcharge,
		SundayNightSurcharge: calc.SundayNightSurcharge,
		HolidaySurcharge:     calc.HolidaySurcharge,
		ExtraHoursPay:        calc.ExtraHoursPay,
		TotalPay:             calc.TotalPay,
		CreatedAt:            calc.CreatedAt,
	}
	if name, ok := calendar.HolidayName(calc.Date); ok {
		resp.HolidayName = &name
	}
	return resp
}
