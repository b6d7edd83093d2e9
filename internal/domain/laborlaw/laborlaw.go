// Package laborlaw resolves the legally effective Colombian labor
// parameters for a given civil date. Several parameters phase in at
// legislated cutover dates (Ley 2101 de 2021 working-hours reduction,
// Ley 2466 de 2025 night window and Sunday/holiday surcharge), so every
// resolver takes the work-day date instead of assuming current law.
package laborlaw

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// 2025 published constants (DIAN / MinTrabajo).
var (
	MinimumWage        = decimal.NewFromInt(1423500)
	TransportAllowance = decimal.NewFromInt(200000)
	UVTValue           = decimal.NewFromInt(49799)
)

// Surcharge rates fixed by CST Art. 168. Only the Sunday/holiday add-on
// is progressive, see SundayHolidaySurchargeRate.
var (
	NightRate      = decimal.NewFromFloat(0.35)
	ExtraDayRate   = decimal.NewFromFloat(0.25)
	ExtraNightRate = decimal.NewFromFloat(0.75)
)

// MaxDailyHours before hours count as overtime.
const MaxDailyHours = 8

func cutover(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Weekly working-hours reduction schedule (Ley 2101 de 2021).
var weeklyHoursSchedule = []struct {
	from  time.Time
	hours int
}{
	{cutover(2026, time.July, 15), 42},
	{cutover(2025, time.July, 15), 44},
	{cutover(2024, time.July, 15), 46},
	{cutover(2023, time.July, 15), 47},
}

// WeeklyHours returns the legal standard work week for the date.
// Before the first Ley 2101 step the CST baseline of 48 hours applies.
func WeeklyHours(date time.Time) int {
	for _, step := range weeklyHoursSchedule {
		if !date.Before(step.from) {
			return step.hours
		}
	}
	return 48
}

// MonthlyHours is the standard monthly hours used as the hourly-rate
// divisor: round(weekly / 6 * 30).
func MonthlyHours(date time.Time) int {
	return int(math.Round(float64(WeeklyHours(date)) / 6.0 * 30.0))
}

var (
	sundayRateCutover2026 = cutover(2026, time.July, 1)
	sundayRateCutover2027 = cutover(2027, time.July, 1)
)

// SundayHolidaySurchargeRate returns the progressive Sunday/holiday
// surcharge (Ley 2466 de 2025): 80% until 2026-06-30, 90% until
// 2027-06-30, 100% from 2027-07-01.
func SundayHolidaySurchargeRate(date time.Time) decimal.Decimal {
	switch {
	case !date.Before(sundayRateCutover2027):
		return decimal.NewFromFloat(1.00)
	case !date.Before(sundayRateCutover2026):
		return decimal.NewFromFloat(0.90)
	default:
		return decimal.NewFromFloat(0.80)
	}
}

// NightWindow is the clock window during which the night surcharge
// applies, expressed in hours [Start, End) across midnight.
type NightWindow struct {
	StartHour int
	EndHour   int
}

var nightWindowCutover = cutover(2025, time.December, 25)

// NightShiftWindow returns the legal night window for the date. Ley 2466
// moves the start from 21:00 to 19:00 effective 2025-12-25.
func NightShiftWindow(date time.Time) NightWindow {
	if !date.Before(nightWindowCutover) {
		return NightWindow{StartHour: 19, EndHour: 6}
	}
	return NightWindow{StartHour: 21, EndHour: 6}
}

// ShiftType is the closed set of shift variants a work day can carry.
type ShiftType string

const (
	ShiftDiurnoAM            ShiftType = "diurno_am"
	ShiftTardePM             ShiftType = "tarde_pm"
	ShiftTrasnocho           ShiftType = "trasnocho"
	ShiftIncapacidad         ShiftType = "incapacidad"
	ShiftARL                 ShiftType = "arl"
	ShiftVacaciones          ShiftType = "vacaciones"
	ShiftLicenciaRemunerada  ShiftType = "licencia_remunerada"
	ShiftLicenciaNoRemunerada ShiftType = "licencia_no_remunerada"

	// Legacy variants kept for older records.
	ShiftMixto      ShiftType = "mixto"
	ShiftDescanso   ShiftType = "descanso"
	ShiftSuspendido ShiftType = "suspendido"
)

var validShiftTypes = map[ShiftType]bool{
	ShiftDiurnoAM:             true,
	ShiftTardePM:              true,
	ShiftTrasnocho:            true,
	ShiftIncapacidad:          true,
	ShiftARL:                  true,
	ShiftVacaciones:           true,
	ShiftLicenciaRemunerada:   true,
	ShiftLicenciaNoRemunerada: true,
	ShiftMixto:                true,
	ShiftDescanso:             true,
	ShiftSuspendido:           true,
}

func (s ShiftType) Valid() bool {
	return validShiftTypes[s]
}

// noSurchargeShifts are leave/incapacity variants paid through the
// special-shift rules, never through surcharges.
var noSurchargeShifts = map[ShiftType]bool{
	ShiftIncapacidad:          true,
	ShiftARL:                  true,
	ShiftVacaciones:           true,
	ShiftLicenciaRemunerada:   true,
	ShiftLicenciaNoRemunerada: true,
	ShiftDescanso:             true,
	ShiftSuspendido:           true,
}

func (s ShiftType) NoSurcharge() bool {
	return noSurchargeShifts[s]
}

// ShiftConfig describes a shift's clock window and its night-hour split.
type ShiftConfig struct {
	StartHour                int
	EndHour                  int
	CrossesMidnight          bool
	NightHoursBeforeMidnight int
	NightHoursAfterMidnight  int
}

// TotalNightHours is the configured night-hour count for the shift.
func (c ShiftConfig) TotalNightHours() int {
	return c.NightHoursBeforeMidnight + c.NightHoursAfterMidnight
}

// ShiftConfiguration maps a shift type to its clock window on a given
// date, taking the night-window cutover into account: tarde_pm
// (13:00-21:00) gains two night hours once the window opens at 19:00.
func ShiftConfiguration(shiftType ShiftType, date time.Time) ShiftConfig {
	switch shiftType {
	case ShiftDiurnoAM:
		// 05:00-13:00, fully diurnal.
		return ShiftConfig{StartHour: 5, EndHour: 13}

	case ShiftTardePM:
		// 13:00-21:00.
		if !date.Before(nightWindowCutover) {
			return ShiftConfig{StartHour: 13, EndHour: 21, NightHoursBeforeMidnight: 2}
		}
		return ShiftConfig{StartHour: 13, EndHour: 21}

	case ShiftTrasnocho:
		// 21:00-05:00, crosses midnight: 3 night hours before, 5 after.
		return ShiftConfig{
			StartHour:                21,
			EndHour:                  5,
			CrossesMidnight:          true,
			NightHoursBeforeMidnight: 3,
			NightHoursAfterMidnight:  5,
		}

	default:
		// Leave/incapacity shifts are notional day windows.
		return ShiftConfig{StartHour: 6, EndHour: 14}
	}
}
