package salary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/calendar"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
)

// vacationDailyRate pays one vacation day at the average of the last
// six completed calendar months' earnings divided by 30. Vacation
// entries are excluded from the average so vacation pay never feeds
// itself; with no earnings history the rate falls back to salary / 30.
func (c *Calculator) vacationDailyRate(allWorkDays []workday.WorkDay, baseSalary decimal.Decimal, referenceDate time.Time) decimal.Decimal {
	totalEarnings := decimal.Zero

	for i := 1; i <= 6; i++ {
		monthStart := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

		for _, wd := range allWorkDays {
			if wd.ShiftType == laborlaw.ShiftVacaciones {
				continue
			}
			if wd.Date.Year() != monthStart.Year() || wd.Date.Month() != monthStart.Month() {
				continue
			}
			totalEarnings = totalEarnings.Add(c.workDayTotal(wd, baseSalary, allWorkDays))
		}
	}

	if totalEarnings.IsZero() {
		return baseSalary.Div(thirty)
	}

	return totalEarnings.Div(six).Div(thirty)
}

// workDayTotal computes a day's total pay without going through
// CalculateWorkDay, so the vacation average cannot recurse into
// vacation pay.
func (c *Calculator) workDayTotal(wd workday.WorkDay, baseSalary decimal.Decimal, allWorkDays []workday.WorkDay) decimal.Decimal {
	hourlyRate := c.HourlyRate(baseSalary, wd.Date)
	regularHours := decimal.NewFromFloat(wd.RegularHours)

	switch wd.ShiftType {
	case laborlaw.ShiftVacaciones:
		return decimal.Zero
	case laborlaw.ShiftIncapacidad:
		position := c.incapacidadPosition(wd, allWorkDays)
		return regularHours.Mul(hourlyRate).Mul(c.incapacidadPercentage(position, baseSalary))
	case laborlaw.ShiftARL, laborlaw.ShiftLicenciaRemunerada:
		return regularHours.Mul(hourlyRate)
	case laborlaw.ShiftLicenciaNoRemunerada, laborlaw.ShiftSuspendido:
		return decimal.Zero
	case laborlaw.ShiftDescanso:
		return baseSalary.Div(thirty)
	}

	total := regularHours.Mul(hourlyRate)

	nightSurcharge, sundayNightSurcharge := c.nightSurcharges(wd, hourlyRate)
	total = total.Add(nightSurcharge).Add(sundayNightSurcharge)

	if calendar.IsHolidayOrSunday(wd.Date) && wd.ShiftType != laborlaw.ShiftTrasnocho {
		holidayRate := laborlaw.SundayHolidaySurchargeRate(wd.Date)
		total = total.Add(regularHours.Mul(hourlyRate).Mul(holidayRate))
	}

	return total.Add(c.extraHoursPay(wd, hourlyRate))
}
