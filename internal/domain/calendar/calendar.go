// Package calendar resolves Colombian public holidays and Sundays for
// civil dates. Variable holidays (Easter-derived plus the ones moved to
// Monday by Law 51 of 1983, the Emiliani law) are kept in a hard-coded
// per-year table rather than computed; years outside the table fall back
// to fixed holidays only.
package calendar

import "time"

type Holiday struct {
	Date time.Time
	Name string
}

type monthDay struct {
	month time.Month
	day   int
	name  string
}

// Fixed holidays, same date every year.
var fixedHolidays = []monthDay{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.July, 20, "Día de la Independencia"},
	{time.August, 7, "Batalla de Boyacá"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// Variable holidays per year, each already resolved to its observed date.
// Extending coverage past 2030 means appending a new year entry here, not
// adding an Easter algorithm.
var variableHolidays = map[int][]monthDay{
	2024: {
		{time.January, 8, "Día de los Reyes Magos"},
		{time.March, 25, "Día de San José"},
		{time.March, 28, "Jueves Santo"},
		{time.March, 29, "Viernes Santo"},
		{time.May, 13, "Día de la Ascensión"},
		{time.June, 3, "Corpus Christi"},
		{time.June, 10, "Sagrado Corazón"},
		{time.July, 1, "San Pedro y San Pablo"},
		{time.August, 19, "Asunción de la Virgen"},
		{time.October, 14, "Día de la Raza"},
		{time.November, 4, "Todos los Santos"},
		{time.November, 11, "Independencia de Cartagena"},
	},
	2025: {
		{time.January, 6, "Día de los Reyes Magos"},
		{time.March, 24, "Día de San José"},
		{time.April, 17, "Jueves Santo"},
		{time.April, 18, "Viernes Santo"},
		{time.June, 2, "Día de la Ascensión"},
		{time.June, 23, "Corpus Christi"},
		{time.June, 30, "Sagrado Corazón"},
		{time.June, 30, "San Pedro y San Pablo"},
		{time.August, 18, "Asunción de la Virgen"},
		{time.October, 13, "Día de la Raza"},
		{time.November, 3, "Todos los Santos"},
		{time.November, 17, "Independencia de Cartagena"},
	},
	2026: {
		{time.January, 12, "Día de los Reyes Magos"},
		{time.March, 23, "Día de San José"},
		{time.April, 2, "Jueves Santo"},
		{time.April, 3, "Viernes Santo"},
		{time.May, 18, "Día de la Ascensión"},
		{time.June, 8, "Corpus Christi"},
		{time.June, 15, "Sagrado Corazón"},
		{time.June, 29, "San Pedro y San Pablo"},
		{time.August, 17, "Asunción de la Virgen"},
		{time.October, 12, "Día de la Raza"},
		{time.November, 2, "Todos los Santos"},
		{time.November, 16, "Independencia de Cartagena"},
	},
	2027: {
		{time.January, 11, "Día de los Reyes Magos"},
		{time.March, 22, "Día de San José"},
		{time.March, 25, "Jueves Santo"},
		{time.March, 26, "Viernes Santo"},
		{time.May, 10, "Día de la Ascensión"},
		{time.May, 31, "Corpus Christi"},
		{time.June, 7, "Sagrado Corazón"},
		{time.June, 28, "San Pedro y San Pablo"},
		{time.August, 16, "Asunción de la Virgen"},
		{time.October, 18, "Día de la Raza"},
		{time.November, 1, "Todos los Santos"},
		{time.November, 15, "Independencia de Cartagena"},
	},
	2028: {
		{time.January, 10, "Día de los Reyes Magos"},
		{time.March, 20, "Día de San José"},
		{time.April, 13, "Jueves Santo"},
		{time.April, 14, "Viernes Santo"},
		{time.May, 29, "Día de la Ascensión"},
		{time.June, 19, "Corpus Christi"},
		{time.June, 26, "Sagrado Corazón"},
		{time.July, 3, "San Pedro y San Pablo"},
		{time.August, 21, "Asunción de la Virgen"},
		{time.October, 16, "Día de la Raza"},
		{time.November, 6, "Todos los Santos"},
		{time.November, 13, "Independencia de Cartagena"},
	},
	2029: {
		{time.January, 8, "Día de los Reyes Magos"},
		{time.March, 19, "Día de San José"},
		{time.March, 29, "Jueves Santo"},
		{time.March, 30, "Viernes Santo"},
		{time.May, 14, "Día de la Ascensión"},
		{time.June, 4, "Corpus Christi"},
		{time.June, 11, "Sagrado Corazón"},
		{time.July, 2, "San Pedro y San Pablo"},
		{time.August, 20, "Asunción de la Virgen"},
		{time.October, 15, "Día de la Raza"},
		{time.November, 5, "Todos los Santos"},
		{time.November, 12, "Independencia de Cartagena"},
	},
	2030: {
		{time.January, 7, "Día de los Reyes Magos"},
		{time.March, 25, "Día de San José"},
		{time.April, 18, "Jueves Santo"},
		{time.April, 19, "Viernes Santo"},
		{time.June, 3, "Día de la Ascensión"},
		{time.June, 24, "Corpus Christi"},
		{time.July, 1, "Sagrado Corazón"},
		{time.July, 1, "San Pedro y San Pablo"},
		{time.August, 19, "Asunción de la Virgen"},
		{time.October, 14, "Día de la Raza"},
		{time.November, 4, "Todos los Santos"},
		{time.November, 11, "Independencia de Cartagena"},
	},
}

// YearSupported reports whether the variable-holiday table covers the
// given year. For unsupported years only fixed holidays are detected and
// the caller should surface a warning to the user.
func YearSupported(year int) bool {
	_, ok := variableHolidays[year]
	return ok
}

// Holidays returns every Colombian holiday for the given year.
func Holidays(year int) []Holiday {
	entries := append([]monthDay{}, fixedHolidays...)
	entries = append(entries, variableHolidays[year]...)

	holidays := make([]Holiday, 0, len(entries))
	for _, e := range entries {
		holidays = append(holidays, Holiday{
			Date: time.Date(year, e.month, e.day, 0, 0, 0, 0, time.UTC),
			Name: e.name,
		})
	}
	return holidays
}

// IsColombianHoliday reports whether the date is a Colombian public
// holiday (fixed or table-listed variable).
func IsColombianHoliday(date time.Time) bool {
	_, ok := HolidayName(date)
	return ok
}

// HolidayName returns the holiday name for the date, if it is one.
func HolidayName(date time.Time) (string, bool) {
	for _, e := range fixedHolidays {
		if date.Month() == e.month && date.Day() == e.day {
			return e.name, true
		}
	}
	for _, e := range variableHolidays[date.Year()] {
		if date.Month() == e.month && date.Day() == e.day {
			return e.name, true
		}
	}
	return "", false
}

func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

func IsSaturday(date time.Time) bool {
	return date.Weekday() == time.Saturday
}

// IsHolidayOrSunday reports whether the date carries the Sunday/holiday
// surcharge: either a Sunday or a listed public holiday.
func IsHolidayOrSunday(date time.Time) bool {
	return IsSunday(date) || IsColombianHoliday(date)
}
