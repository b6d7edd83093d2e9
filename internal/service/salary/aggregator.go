package salary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
)

// MonthlySummary folds per-day calculations into one month's totals.
// workDays should already be filtered to a single month; the slice is
// also the history snapshot for streak-dependent days.
func (c *Calculator) MonthlySummary(workDays []workday.WorkDay, baseSalary decimal.Decimal) workday.MonthlySummary {
	summary := workday.MonthlySummary{
		TotalRegularPay:           decimal.Zero,
		TotalNightSurcharge:       decimal.Zero,
		TotalSundayNightSurcharge: decimal.Zero,
		TotalHolidaySurcharge:     decimal.Zero,
		TotalExtraHoursPay:        decimal.Zero,
		TotalPay:                  decimal.Zero,
	}

	for _, wd := range workDays {
		calc := c.CalculateWorkDay(wd, baseSalary, workDays)
		summary.TotalRegularPay = summary.TotalRegularPay.Add(calc.RegularPay)
		summary.TotalNightSurcharge = summary.TotalNightSurcharge.Add(calc.NightSurcharge)
		summary.TotalSundayNightSurcharge = summary.TotalSundayNightSurcharge.Add(calc.SundayNightSurcharge)
		summary.TotalHolidaySurcharge = summary.TotalHolidaySurcharge.Add(calc.HolidaySurcharge)
		summary.TotalExtraHoursPay = summary.TotalExtraHoursPay.Add(calc.ExtraHoursPay)
		summary.TotalPay = summary.TotalPay.Add(calc.TotalPay)
		summary.DaysWorked++
		summary.TotalHours += wd.RegularHours + wd.ExtraHours
	}

	return summary
}

// SurchargesOnly sums only the four surcharge/extra components,
// excluding regular pay: the payslip shows the current month's regular
// pay next to the previous month's surcharges, which lag one pay cycle.
func (c *Calculator) SurchargesOnly(workDays []workday.WorkDay, baseSalary decimal.Decimal) workday.SurchargesSummary {
	summary := workday.SurchargesSummary{
		TotalNightSurcharge:       decimal.Zero,
		TotalSundayNightSurcharge: decimal.Zero,
		TotalHolidaySurcharge:     decimal.Zero,
		TotalExtraHoursPay:        decimal.Zero,
		TotalSurcharges:           decimal.Zero,
	}

	for _, wd := range workDays {
		calc := c.CalculateWorkDay(wd, baseSalary, workDays)
		summary.TotalNightSurcharge = summary.TotalNightSurcharge.Add(calc.NightSurcharge)
		summary.TotalSundayNightSurcharge = summary.TotalSundayNightSurcharge.Add(calc.SundayNightSurcharge)
		summary.TotalHolidaySurcharge = summary.TotalHolidaySurcharge.Add(calc.HolidaySurcharge)
		summary.TotalExtraHoursPay = summary.TotalExtraHoursPay.Add(calc.ExtraHoursPay)
		summary.TotalSurcharges = summary.TotalSurcharges.
			Add(calc.NightSurcharge).
			Add(calc.SundayNightSurcharge).
			Add(calc.HolidaySurcharge).
			Add(calc.ExtraHoursPay)
	}

	return summary
}

// FilterByMonth keeps the work days whose civil date falls in the same
// calendar month and year as ref. No timezone conversion is applied.
func (c *Calculator) FilterByMonth(workDays []workday.WorkDay, ref time.Time) []workday.WorkDay {
	filtered := make([]workday.WorkDay, 0, len(workDays))
	for _, wd := range workDays {
		if wd.Date.Year() == ref.Year() && wd.Date.Month() == ref.Month() {
			filtered = append(filtered, wd)
		}
	}
	return filtered
}
