package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
)

// baseSalary above the minimum wage so the two-thirds sick-pay rule
// applies. August 2025 falls in the 44-hour week, 220 monthly hours.
var (
	testSalary = decimal.NewFromInt(2416500)
	rate220    = testSalary.Div(decimal.NewFromInt(220))
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func day(id string, d time.Time, shift laborlaw.ShiftType, regular, extra float64) workday.WorkDay {
	return workday.WorkDay{
		ID:           id,
		UserID:       "u1",
		Date:         d,
		ShiftType:    shift,
		RegularHours: regular,
		ExtraHours:   extra,
	}
}

func TestHourlyRate(t *testing.T) {
	c := NewCalculator()

	// 46-hour week until 2025-07-14, 44-hour week after.
	assert.True(t, c.HourlyRate(testSalary, date(2025, time.March, 3)).Equal(testSalary.Div(decimal.NewFromInt(230))))
	assert.True(t, c.HourlyRate(testSalary, date(2025, time.August, 4)).Equal(rate220))
}

func TestCalculateWorkDay_OrdinaryWeekday(t *testing.T) {
	c := NewCalculator()
	wd := day("wd1", date(2025, time.August, 4), laborlaw.ShiftDiurnoAM, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expected := rate220.Mul(decimal.NewFromInt(8))
	assert.True(t, calc.RegularPay.Equal(expected), "got %s", calc.RegularPay)
	assert.True(t, calc.NightSurcharge.IsZero())
	assert.True(t, calc.SundayNightSurcharge.IsZero())
	assert.True(t, calc.HolidaySurcharge.IsZero())
	assert.True(t, calc.ExtraHoursPay.IsZero())
	assert.True(t, calc.TotalPay.Equal(expected))
	assert.False(t, calc.IsHoliday)
}

func TestCalculateWorkDay_Idempotent(t *testing.T) {
	c := NewCalculator()
	wd := day("wd1", date(2025, time.August, 3), laborlaw.ShiftTrasnocho, 8, 2)
	history := []workday.WorkDay{wd}

	first := c.CalculateWorkDay(wd, testSalary, history)
	second := c.CalculateWorkDay(wd, testSalary, history)

	assert.True(t, first.TotalPay.Equal(second.TotalPay))
	assert.True(t, first.NightSurcharge.Equal(second.NightSurcharge))
}

func TestCalculateWorkDay_TotalIsComponentSum(t *testing.T) {
	c := NewCalculator()

	days := []workday.WorkDay{
		day("a", date(2025, time.August, 3), laborlaw.ShiftDiurnoAM, 8, 2),
		day("b", date(2025, time.August, 2), laborlaw.ShiftTrasnocho, 8, 1),
		day("c", date(2025, time.August, 7), laborlaw.ShiftTardePM, 8, 0),
		day("d", date(2025, time.August, 5), laborlaw.ShiftIncapacidad, 8, 0),
		day("e", date(2025, time.December, 26), laborlaw.ShiftTardePM, 8, 0),
	}

	for _, wd := range days {
		calc := c.CalculateWorkDay(wd, testSalary, days)
		sum := calc.RegularPay.
			Add(calc.NightSurcharge).
			Add(calc.SundayNightSurcharge).
			Add(calc.HolidaySurcharge).
			Add(calc.ExtraHoursPay)
		assert.True(t, calc.TotalPay.Equal(sum), "total mismatch for %s", wd.ID)
	}
}

func TestCalculateWorkDay_SundaySurcharge(t *testing.T) {
	c := NewCalculator()
	// 2025-08-03 is a Sunday.
	wd := day("wd1", date(2025, time.August, 3), laborlaw.ShiftDiurnoAM, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expectedSurcharge := rate220.Mul(decimal.NewFromInt(8)).Mul(decimal.NewFromFloat(0.80))
	assert.True(t, calc.IsHoliday)
	assert.True(t, calc.HolidaySurcharge.Equal(expectedSurcharge), "got %s", calc.HolidaySurcharge)
	assert.True(t, calc.NightSurcharge.IsZero())
}

func TestCalculateWorkDay_TardePMNightWindowChange(t *testing.T) {
	c := NewCalculator()

	// Before 2025-12-25 the night window opens at 21:00 and tarde_pm
	// earns no night surcharge.
	before := day("wd1", date(2025, time.December, 23), laborlaw.ShiftTardePM, 8, 0)
	calcBefore := c.CalculateWorkDay(before, testSalary, []workday.WorkDay{before})
	assert.True(t, calcBefore.NightSurcharge.IsZero())

	// From 2025-12-25 the window opens at 19:00: two night hours.
	// 2025-12-26 is an ordinary Friday.
	after := day("wd2", date(2025, time.December, 26), laborlaw.ShiftTardePM, 8, 0)
	calcAfter := c.CalculateWorkDay(after, testSalary, []workday.WorkDay{after})

	expected := decimal.NewFromInt(2).Mul(rate220).Mul(decimal.NewFromFloat(0.35))
	assert.True(t, calcAfter.NightSurcharge.Equal(expected), "got %s", calcAfter.NightSurcharge)
}

func TestCalculateWorkDay_TrasnochoOrdinary(t *testing.T) {
	c := NewCalculator()
	// 2025-08-05 is a Tuesday.
	wd := day("wd1", date(2025, time.August, 5), laborlaw.ShiftTrasnocho, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expected := decimal.NewFromInt(8).Mul(rate220).Mul(decimal.NewFromFloat(0.35))
	assert.True(t, calc.NightSurcharge.Equal(expected))
	assert.True(t, calc.SundayNightSurcharge.IsZero())
	assert.True(t, calc.HolidaySurcharge.IsZero())
}

func TestCalculateWorkDay_TrasnochoSaturdaySplit(t *testing.T) {
	c := NewCalculator()
	// Saturday 2025-08-02: 3 hours before midnight at plain night rate,
	// 5 hours after midnight already on Sunday.
	wd := day("wd1", date(2025, time.August, 2), laborlaw.ShiftTrasnocho, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expectedNight := decimal.NewFromInt(3).Mul(rate220).Mul(decimal.NewFromFloat(0.35))
	expectedSundayNight := decimal.NewFromInt(5).Mul(rate220).Mul(decimal.NewFromFloat(1.15))
	assert.True(t, calc.NightSurcharge.Equal(expectedNight), "got %s", calc.NightSurcharge)
	assert.True(t, calc.SundayNightSurcharge.Equal(expectedSundayNight), "got %s", calc.SundayNightSurcharge)
	assert.True(t, calc.HolidaySurcharge.IsZero())
}

func TestCalculateWorkDay_TrasnochoHolidayFoldsSurcharge(t *testing.T) {
	c := NewCalculator()
	// Sunday 2025-08-03: the whole shift earns night + Sunday rate and
	// the separate holiday surcharge stays zero.
	wd := day("wd1", date(2025, time.August, 3), laborlaw.ShiftTrasnocho, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expected := decimal.NewFromInt(8).Mul(rate220).Mul(decimal.NewFromFloat(1.15))
	assert.True(t, calc.NightSurcharge.Equal(expected), "got %s", calc.NightSurcharge)
	assert.True(t, calc.SundayNightSurcharge.IsZero())
	assert.True(t, calc.HolidaySurcharge.IsZero())
}

func TestExtraHoursPay(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name       string
		wd         workday.WorkDay
		multiplier decimal.Decimal
	}{
		{
			"weekday day overtime at 25%",
			day("a", date(2025, time.August, 4), laborlaw.ShiftDiurnoAM, 8, 2),
			decimal.NewFromFloat(1.25),
		},
		{
			"weekday night overtime at 75%",
			day("b", date(2025, time.August, 5), laborlaw.ShiftTrasnocho, 8, 2),
			decimal.NewFromFloat(1.75),
		},
		{
			"sunday day overtime adds the holiday rate",
			day("c", date(2025, time.August, 3), laborlaw.ShiftDiurnoAM, 8, 2),
			decimal.NewFromFloat(2.05),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := c.CalculateWorkDay(tt.wd, testSalary, []workday.WorkDay{tt.wd})
			expected := decimal.NewFromInt(2).Mul(rate220).Mul(tt.multiplier)
			assert.True(t, calc.ExtraHoursPay.Equal(expected), "got %s", calc.ExtraHoursPay)
		})
	}
}

func TestCalculateWorkDay_SpecialShiftsEarnNoSurcharges(t *testing.T) {
	c := NewCalculator()
	// Sunday on purpose: even then leave shifts earn no surcharges.
	sunday := date(2025, time.August, 3)

	for _, shift := range []laborlaw.ShiftType{
		laborlaw.ShiftIncapacidad, laborlaw.ShiftARL, laborlaw.ShiftVacaciones,
		laborlaw.ShiftLicenciaRemunerada, laborlaw.ShiftLicenciaNoRemunerada,
		laborlaw.ShiftDescanso, laborlaw.ShiftSuspendido,
	} {
		wd := day("wd1", sunday, shift, 8, 0)
		calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

		assert.True(t, calc.NightSurcharge.IsZero(), string(shift))
		assert.True(t, calc.SundayNightSurcharge.IsZero(), string(shift))
		assert.True(t, calc.HolidaySurcharge.IsZero(), string(shift))
		assert.True(t, calc.ExtraHoursPay.IsZero(), string(shift))
		assert.True(t, calc.TotalPay.Equal(calc.RegularPay), string(shift))
	}
}

func TestIncapacidadStreak(t *testing.T) {
	c := NewCalculator()

	history := []workday.WorkDay{
		day("d1", date(2025, time.August, 4), laborlaw.ShiftIncapacidad, 8, 0),
		day("d2", date(2025, time.August, 5), laborlaw.ShiftIncapacidad, 8, 0),
		day("d3", date(2025, time.August, 6), laborlaw.ShiftIncapacidad, 8, 0),
	}

	fullDay := rate220.Mul(decimal.NewFromInt(8))

	calc1 := c.CalculateWorkDay(history[0], testSalary, history)
	calc2 := c.CalculateWorkDay(history[1], testSalary, history)
	calc3 := c.CalculateWorkDay(history[2], testSalary, history)

	assert.True(t, calc1.RegularPay.Equal(fullDay), "day 1 at full pay")
	assert.True(t, calc2.RegularPay.Equal(fullDay), "day 2 at full pay")

	expectedDay3 := fullDay.Mul(decimal.NewFromFloat(0.6667))
	assert.True(t, calc3.RegularPay.Equal(expectedDay3), "day 3 at two thirds, got %s", calc3.RegularPay)
}

func TestIncapacidadStreak_GapResets(t *testing.T) {
	c := NewCalculator()

	history := []workday.WorkDay{
		day("d1", date(2025, time.August, 4), laborlaw.ShiftIncapacidad, 8, 0),
		day("d2", date(2025, time.August, 5), laborlaw.ShiftIncapacidad, 8, 0),
		// Two-day gap: streak restarts.
		day("d3", date(2025, time.August, 8), laborlaw.ShiftIncapacidad, 8, 0),
	}

	fullDay := rate220.Mul(decimal.NewFromInt(8))
	calc3 := c.CalculateWorkDay(history[2], testSalary, history)
	assert.True(t, calc3.RegularPay.Equal(fullDay), "restarted streak pays full")
}

func TestIncapacidadStreak_MinimumWageKeepsFullPay(t *testing.T) {
	c := NewCalculator()
	minWage := laborlaw.MinimumWage

	history := []workday.WorkDay{
		day("d1", date(2025, time.August, 4), laborlaw.ShiftIncapacidad, 8, 0),
		day("d2", date(2025, time.August, 5), laborlaw.ShiftIncapacidad, 8, 0),
		day("d3", date(2025, time.August, 6), laborlaw.ShiftIncapacidad, 8, 0),
	}

	fullDay := minWage.Div(decimal.NewFromInt(220)).Mul(decimal.NewFromInt(8))
	calc3 := c.CalculateWorkDay(history[2], minWage, history)
	assert.True(t, calc3.RegularPay.Equal(fullDay), "minimum wage earners keep full pay on day 3")
}

func TestIncapacidad_NoHistoryCountsAsFirstDay(t *testing.T) {
	c := NewCalculator()
	wd := day("unknown", date(2025, time.August, 6), laborlaw.ShiftIncapacidad, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, nil)
	fullDay := rate220.Mul(decimal.NewFromInt(8))
	assert.True(t, calc.RegularPay.Equal(fullDay))
}

func TestVacationPay_FallsBackToSalary(t *testing.T) {
	c := NewCalculator()
	wd := day("v1", date(2025, time.August, 10), laborlaw.ShiftVacaciones, 8, 0)

	calc := c.CalculateWorkDay(wd, testSalary, []workday.WorkDay{wd})

	expected := testSalary.Div(decimal.NewFromInt(30))
	assert.True(t, calc.RegularPay.Equal(expected), "got %s", calc.RegularPay)
}

func TestVacationPay_AveragesSixMonths(t *testing.T) {
	c := NewCalculator()

	// One ordinary day in July 2025 (230 monthly hours that month).
	worked := day("w1", date(2025, time.July, 1), laborlaw.ShiftDiurnoAM, 8, 0)
	vacation := day("v1", date(2025, time.August, 10), laborlaw.ShiftVacaciones, 8, 0)
	history := []workday.WorkDay{worked, vacation}

	calc := c.CalculateWorkDay(vacation, testSalary, history)

	julyTotal := testSalary.Div(decimal.NewFromInt(230)).Mul(decimal.NewFromInt(8))
	expected := julyTotal.Div(decimal.NewFromInt(6)).Div(decimal.NewFromInt(30))
	assert.True(t, calc.RegularPay.Equal(expected), "got %s want %s", calc.RegularPay, expected)
}

func TestLegacyShifts(t *testing.T) {
	c := NewCalculator()

	descanso := day("d1", date(2025, time.August, 4), laborlaw.ShiftDescanso, 0, 0)
	calcDescanso := c.CalculateWorkDay(descanso, testSalary, []workday.WorkDay{descanso})
	assert.True(t, calcDescanso.RegularPay.Equal(testSalary.Div(decimal.NewFromInt(30))))

	suspendido := day("s1", date(2025, time.August, 4), laborlaw.ShiftSuspendido, 0, 0)
	calcSuspendido := c.CalculateWorkDay(suspendido, testSalary, []workday.WorkDay{suspendido})
	assert.True(t, calcSuspendido.TotalPay.IsZero())
}

func TestMonthlySummary(t *testing.T) {
	c := NewCalculator()

	days := []workday.WorkDay{
		day("a", date(2025, time.August, 4), laborlaw.ShiftDiurnoAM, 8, 0),
		day("b", date(2025, time.August, 5), laborlaw.ShiftTrasnocho, 8, 2),
		day("c", date(2025, time.August, 3), laborlaw.ShiftDiurnoAM, 8, 0),
	}

	summary := c.MonthlySummary(days, testSalary)

	assert.Equal(t, 3, summary.DaysWorked)
	assert.Equal(t, 26.0, summary.TotalHours)

	componentSum := summary.TotalRegularPay.
		Add(summary.TotalNightSurcharge).
		Add(summary.TotalSundayNightSurcharge).
		Add(summary.TotalHolidaySurcharge).
		Add(summary.TotalExtraHoursPay)
	assert.True(t, summary.TotalPay.Equal(componentSum))

	var expectedTotal = decimal.Zero
	for _, wd := range days {
		expectedTotal = expectedTotal.Add(c.CalculateWorkDay(wd, testSalary, days).TotalPay)
	}
	assert.True(t, summary.TotalPay.Equal(expectedTotal))
}

func TestSurchargesOnly_ExcludesRegularPay(t *testing.T) {
	c := NewCalculator()

	days := []workday.WorkDay{
		day("a", date(2025, time.August, 3), laborlaw.ShiftDiurnoAM, 8, 2),
		day("b", date(2025, time.August, 5), laborlaw.ShiftTrasnocho, 8, 0),
	}

	surcharges := c.SurchargesOnly(days, testSalary)
	summary := c.MonthlySummary(days, testSalary)

	expected := summary.TotalPay.Sub(summary.TotalRegularPay)
	assert.True(t, surcharges.TotalSurcharges.Equal(expected), "got %s want %s", surcharges.TotalSurcharges, expected)

	componentSum := surcharges.TotalNightSurcharge.
		Add(surcharges.TotalSundayNightSurcharge).
		Add(surcharges.TotalHolidaySurcharge).
		Add(surcharges.TotalExtraHoursPay)
	assert.True(t, surcharges.TotalSurcharges.Equal(componentSum))
}

func TestFilterByMonth(t *testing.T) {
	c := NewCalculator()

	days := []workday.WorkDay{
		day("a", date(2025, time.July, 31), laborlaw.ShiftDiurnoAM, 8, 0),
		day("b", date(2025, time.August, 1), laborlaw.ShiftDiurnoAM, 8, 0),
		day("c", date(2025, time.August, 31), laborlaw.ShiftDiurnoAM, 8, 0),
		day("d", date(2024, time.August, 15), laborlaw.ShiftDiurnoAM, 8, 0),
	}

	filtered := c.FilterByMonth(days, date(2025, time.August, 1))
	require.Len(t, filtered, 2)
	assert.Equal(t, "b", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)
}
