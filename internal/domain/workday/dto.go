package workday

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

const maxNotesLength = 500

func validateShiftFields(errs validator.ValidationErrors, dateStr, shiftType string, regularHours, extraHours float64, notes *string) validator.ValidationErrors {
	if _, ok := validator.IsValidDate(dateStr); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !laborlaw.ShiftType(shiftType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "unknown shift type"})
	}
	if regularHours < 0 || regularHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "regular_hours", Message: "must be between 0 and 24"})
	}
	if extraHours < 0 || extraHours > 12 {
		errs = append(errs, validator.ValidationError{Field: "extra_hours", Message: "must be between 0 and 12"})
	}
	if notes != nil && len(*notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "must be at most 500 characters"})
	}
	return errs
}

type CreateWorkDayRequest struct {
	Date         string  `json:"date"`
	ShiftType    string  `json:"shift_type"`
	RegularHours float64 `json:"regular_hours"`
	ExtraHours   float64 `json:"extra_hours"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateWorkDayRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validateShiftFields(errs, r.Date, r.ShiftType, r.RegularHours, r.ExtraHours, r.Notes)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkCreateWorkDaysRequest inserts one work day per date in the
// inclusive [start_date, end_date] range, all with the same shift.
type BulkCreateWorkDaysRequest struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	ShiftType    string  `json:"shift_type"`
	RegularHours float64 `json:"regular_hours"`
	ExtraHours   float64 `json:"extra_hours"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *BulkCreateWorkDaysRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validateShiftFields(errs, r.StartDate, r.ShiftType, r.RegularHours, r.ExtraHours, r.Notes)
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateWorkDayRequest replaces every mutable field of a work day; the
// edit form resubmits the full record.
type UpdateWorkDayRequest struct {
	ID           string  `json:"-"`
	Date         string  `json:"date"`
	ShiftType    string  `json:"shift_type"`
	RegularHours float64 `json:"regular_hours"`
	ExtraHours   float64 `json:"extra_hours"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateWorkDayRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validateShiftFields(errs, r.Date, r.ShiftType, r.RegularHours, r.ExtraHours, r.Notes)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID                   string          `json:"id"`
	Date                 string          `json:"date"`
	ShiftType            string          `json:"shift_type"`
	RegularHours         float64         `json:"regular_hours"`
	ExtraHours           float64         `json:"extra_hours"`
	IsHoliday            bool            `json:"is_holiday"`
	HolidayName          *string         `json:"holiday_name,omitempty"`
	Notes                *string         `json:"notes,omitempty"`
	RegularPay           decimal.Decimal `json:"regular_pay"`
	NightSurcharge       decimal.Decimal `json:"night_surcharge"`
	SundayNightSurcharge decimal.Decimal `json:"sunday_night_surcharge"`
	HolidaySurcharge     decimal.Decimal `json:"holiday_surcharge"`
	ExtraHoursPay        decimal.Decimal `json:"extra_hours_pay"`
	TotalPay             decimal.Decimal `json:"total_pay"`
	CreatedAt            time.Time       `json:"created_at"`
}

type MonthlySummaryResponse struct {
	Month                     string          `json:"month"`
	TotalRegularPay           decimal.Decimal `json:"total_regular_pay"`
	TotalNightSurcharge       decimal.Decimal `json:"total_night_surcharge"`
	TotalSundayNightSurcharge decimal.Decimal `json:"total_sunday_night_surcharge"`
	TotalHolidaySurcharge     decimal.Decimal `json:"total_holiday_surcharge"`
	TotalExtraHoursPay        decimal.Decimal `json:"total_extra_hours_pay"`
	TotalPay                  decimal.Decimal `json:"total_pay"`
	DaysWorked                int             `json:"days_worked"`
	TotalHours                float64         `json:"total_hours"`
}

type SurchargesSummaryResponse struct {
	Month                     string          `json:"month"`
	TotalNightSurcharge       decimal.Decimal `json:"total_night_surcharge"`
	TotalSundayNightSurcharge decimal.Decimal `json:"total_sunday_night_surcharge"`
	TotalHolidaySurcharge     decimal.Decimal `json:"total_holiday_surcharge"`
	TotalExtraHoursPay        decimal.Decimal `json:"total_extra_hours_pay"`
	TotalSurcharges           decimal.Decimal `json:"total_surcharges"`
}

// ListCalculationsResponse carries per-day breakdowns plus a warning
// when some listed year falls outside the variable-holiday table.
type ListCalculationsResponse struct {
	Data           []CalculationResponse `json:"data"`
	HolidayWarning *string               `json:"holiday_warning,omitempty"`
}
