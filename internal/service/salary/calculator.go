// Package salary implements the work-day pay engine: per-day pay
// breakdowns with night, Sunday/holiday and overtime surcharges, the
// special leave/incapacity pay rules, and the monthly aggregates.
//
// Every function here is a pure computation over its inputs. Callers
// must pass the user's complete work-day history where noted; streak
// positions and the vacation average silently degrade on a partial
// snapshot.
package salary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/calendar"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
)

var (
	one       = decimal.NewFromInt(1)
	six       = decimal.NewFromInt(6)
	thirty    = decimal.NewFromInt(30)
	fullRate  = decimal.NewFromInt(1)
	twoThirds = decimal.NewFromFloat(0.6667)
	halfRate  = decimal.NewFromFloat(0.5)
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// HourlyRate is the base salary divided by the standard monthly hours
// in force on the given date.
func (c *Calculator) HourlyRate(baseSalary decimal.Decimal, date time.Time) decimal.Decimal {
	return baseSalary.Div(decimal.NewFromInt(int64(laborlaw.MonthlyHours(date))))
}

// CalculateWorkDay computes the pay breakdown for one work day.
// allWorkDays must be the user's full history: incapacidad pay depends
// on the consecutive-day position and vacation pay on the trailing
// six-month average. IsHoliday is recomputed from the calendar, never
// trusted from the record.
func (c *Calculator) CalculateWorkDay(wd workday.WorkDay, baseSalary decimal.Decimal, allWorkDays []workday.WorkDay) workday.Calculation {
	hourlyRate := c.HourlyRate(baseSalary, wd.Date)
	isHoliday := calendar.IsHolidayOrSunday(wd.Date)
	wd.IsHoliday = isHoliday

	if wd.ShiftType.NoSurcharge() {
		regularPay := c.specialShiftPay(wd, hourlyRate, baseSalary, allWorkDays)
		return workday.Calculation{
			WorkDay:              wd,
			RegularPay:           regularPay,
			NightSurcharge:       decimal.Zero,
			SundayNightSurcharge: decimal.Zero,
			HolidaySurcharge:     decimal.Zero,
			ExtraHoursPay:        decimal.Zero,
			TotalPay:             regularPay,
		}
	}

	regularHours := decimal.NewFromFloat(wd.RegularHours)
	regularPay := regularHours.Mul(hourlyRate)

	nightSurcharge, sundayNightSurcharge := c.nightSurcharges(wd, hourlyRate)

	// Sunday/holiday surcharge on non-overnight shifts only; for
	// trasnocho it is already folded into the night surcharge.
	holidaySurcharge := decimal.Zero
	if isHoliday && wd.ShiftType != laborlaw.ShiftTrasnocho {
		holidayRate := laborlaw.SundayHolidaySurchargeRate(wd.Date)
		holidaySurcharge = regularHours.Mul(hourlyRate).Mul(holidayRate)
	}

	extraHoursPay := c.extraHoursPay(wd, hourlyRate)

	totalPay := regularPay.
		Add(nightSurcharge).
		Add(sundayNightSurcharge).
		Add(holidaySurcharge).
		Add(extraHoursPay)

	return workday.Calculation{
		WorkDay:              wd,
		RegularPay:           regularPay,
		NightSurcharge:       nightSurcharge,
		SundayNightSurcharge: sundayNightSurcharge,
		HolidaySurcharge:     holidaySurcharge,
		ExtraHoursPay:        extraHoursPay,
		TotalPay:             totalPay,
	}
}

// nightSurcharges computes the plain and Sunday-crossing night
// surcharges for a shift.
//
// The trasnocho shift crosses midnight, so its hours split at 00:00:
// on a holiday or Sunday the whole shift earns night + holiday rate; on
// a Saturday the hours before midnight earn the plain night rate while
// the hours after midnight, already Sunday, earn night + Sunday rate;
// any other day earns the plain night rate.
//
// Non-overnight shifts earn night surcharge only for their configured
// night-window overlap (tarde_pm gains two night hours once the window
// starts at 19:00).
func (c *Calculator) nightSurcharges(wd workday.WorkDay, hourlyRate decimal.Decimal) (nightSurcharge, sundayNightSurcharge decimal.Decimal) {
	nightSurcharge = decimal.Zero
	sundayNightSurcharge = decimal.Zero

	isHoliday := calendar.IsHolidayOrSunday(wd.Date)
	cfg := laborlaw.ShiftConfiguration(wd.ShiftType, wd.Date)
	holidayRate := laborlaw.SundayHolidaySurchargeRate(wd.Date)

	if wd.ShiftType != laborlaw.ShiftTrasnocho {
		nightHours := decimal.NewFromInt(int64(cfg.TotalNightHours()))
		if nightHours.IsZero() {
			return nightSurcharge, sundayNightSurcharge
		}
		rate := laborlaw.NightRate
		if isHoliday {
			rate = rate.Add(holidayRate)
		}
		nightSurcharge = nightHours.Mul(hourlyRate).Mul(rate)
		return nightSurcharge, sundayNightSurcharge
	}

	regularHours := decimal.NewFromFloat(wd.RegularHours)
	switch {
	case isHoliday:
		nightSurcharge = regularHours.Mul(hourlyRate).Mul(laborlaw.NightRate.Add(holidayRate))
	case calendar.IsSaturday(wd.Date):
		before := decimal.NewFromInt(int64(cfg.NightHoursBeforeMidnight))
		after := decimal.NewFromInt(int64(cfg.NightHoursAfterMidnight))
		nightSurcharge = before.Mul(hourlyRate).Mul(laborlaw.NightRate)
		sundayNightSurcharge = after.Mul(hourlyRate).Mul(laborlaw.NightRate.Add(holidayRate))
	default:
		nightSurcharge = regularHours.Mul(hourlyRate).Mul(laborlaw.NightRate)
	}

	return nightSurcharge, sundayNightSurcharge
}

// extraHoursPay pays overtime at hourlyRate * (1 + multiplier) where
// the multiplier is the day or night overtime rate, plus the
// Sunday/holiday rate on such days.
func (c *Calculator) extraHoursPay(wd workday.WorkDay, hourlyRate decimal.Decimal) decimal.Decimal {
	if wd.ExtraHours == 0 {
		return decimal.Zero
	}

	multiplier := laborlaw.ExtraDayRate
	if wd.ShiftType == laborlaw.ShiftTrasnocho {
		multiplier = laborlaw.ExtraNightRate
	}
	if calendar.IsHolidayOrSunday(wd.Date) {
		multiplier = multiplier.Add(laborlaw.SundayHolidaySurchargeRate(wd.Date))
	}

	return decimal.NewFromFloat(wd.ExtraHours).Mul(hourlyRate).Mul(one.Add(multiplier))
}

// specialShiftPay handles the leave/incapacity shift types, which never
// earn surcharges.
func (c *Calculator) specialShiftPay(wd workday.WorkDay, hourlyRate, baseSalary decimal.Decimal, allWorkDays []workday.WorkDay) decimal.Decimal {
	regularHours := decimal.NewFromFloat(wd.RegularHours)

	switch wd.ShiftType {
	case laborlaw.ShiftIncapacidad:
		position := c.incapacidadPosition(wd, allWorkDays)
		percentage := c.incapacidadPercentage(position, baseSalary)
		return regularHours.Mul(hourlyRate).Mul(percentage)

	case laborlaw.ShiftARL:
		return regularHours.Mul(hourlyRate)

	case laborlaw.ShiftVacaciones:
		return c.vacationDailyRate(allWorkDays, baseSalary, wd.Date)

	case laborlaw.ShiftLicenciaRemunerada:
		return regularHours.Mul(hourlyRate)

	case laborlaw.ShiftLicenciaNoRemunerada:
		return decimal.Zero

	case laborlaw.ShiftDescanso:
		// Paid rest (CST Art. 172): one ordinary day, salary / 30.
		return baseSalary.Div(thirty)

	case laborlaw.ShiftSuspendido:
		// Disciplinary suspension (CST Art. 51): unpaid.
		return decimal.Zero

	default:
		return regularHours.Mul(hourlyRate)
	}
}

// incapacidadPosition returns the 1-based position of the work day
// inside its unbroken run of incapacidad days. A gap of more than one
// calendar day between records breaks the streak. With no history the
// day counts as position 1.
func (c *Calculator) incapacidadPosition(wd workday.WorkDay, allWorkDays []workday.WorkDay) int {
	var incapacidadDays []workday.WorkDay
	for _, d := range allWorkDays {
		if d.ShiftType == laborlaw.ShiftIncapacidad {
			incapacidadDays = append(incapacidadDays, d)
		}
	}
	sort.Slice(incapacidadDays, func(i, j int) bool {
		return incapacidadDays[i].Date.Before(incapacidadDays[j].Date)
	})

	position := 1
	for i, d := range incapacidadDays {
		if i > 0 {
			gap := daysBetween(incapacidadDays[i-1].Date, d.Date)
			if gap > 1 {
				position = 1
			} else {
				position++
			}
		}
		if d.ID == wd.ID {
			return position
		}
	}
	return 1
}

// incapacidadPercentage maps a streak position to the sick-pay fraction
// (Art. 227 CST, Decreto 2943 de 2013): days 1-2 at 100%, days 3-90 at
// two thirds (or 100% for minimum-wage earners), days 91-180 at half.
func (c *Calculator) incapacidadPercentage(position int, baseSalary decimal.Decimal) decimal.Decimal {
	isMinimumWage := baseSalary.LessThanOrEqual(laborlaw.MinimumWage)

	switch {
	case position <= 2:
		return fullRate
	case position <= 90:
		if isMinimumWage {
			return fullRate
		}
		return twoThirds
	default:
		return halfRate
	}
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
