package workday

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
)

// WorkDay is one logged day of work or leave. Date is a civil date at
// UTC midnight; IsHoliday is derived from the Colombian calendar on
// every read, never trusted from storage.
type WorkDay struct {
	ID           string
	UserID       string
	Date         time.Time
	ShiftType    laborlaw.ShiftType
	RegularHours float64
	ExtraHours   float64
	IsHoliday    bool
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Calculation is a WorkDay plus its computed pay breakdown. Derived,
// recomputed on read; TotalPay always equals the sum of the five
// components, and for leave shifts the four surcharge fields are zero.
type Calculation struct {
	WorkDay
	RegularPay           decimal.Decimal
	NightSurcharge       decimal.Decimal
	SundayNightSurcharge decimal.Decimal
	HolidaySurcharge     decimal.Decimal
	ExtraHoursPay        decimal.Decimal
	TotalPay             decimal.Decimal
}

// MonthlySummary aggregates Calculations over one calendar month.
type MonthlySummary struct {
	TotalRegularPay           decimal.Decimal
	TotalNightSurcharge       decimal.Decimal
	TotalSundayNightSurcharge decimal.Decimal
	TotalHolidaySurcharge     decimal.Decimal
	TotalExtraHoursPay        decimal.Decimal
	TotalPay                  decimal.Decimal
	DaysWorked                int
	TotalHours                float64
}

// SurchargesSummary aggregates only the surcharge/extra components.
// Surcharges are paid the month after they are earned, so the payslip
// combines the current month's regular pay with the previous month's
// surcharge total.
type SurchargesSummary struct {
	TotalNightSurcharge       decimal.Decimal
	TotalSundayNightSurcharge decimal.Decimal
	TotalHolidaySurcharge     decimal.Decimal
	TotalExtraHoursPay        decimal.Decimal
	TotalSurcharges           decimal.Decimal
}
