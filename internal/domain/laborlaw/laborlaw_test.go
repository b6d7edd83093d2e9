package laborlaw

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyHoursSchedule(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"before first reduction", date(2023, time.July, 14), 48},
		{"first step", date(2023, time.July, 15), 47},
		{"second step", date(2024, time.July, 15), 46},
		{"day before third step", date(2025, time.July, 14), 46},
		{"third step", date(2025, time.July, 15), 44},
		{"final step", date(2026, time.July, 15), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeklyHours(tt.date))
		})
	}
}

func TestMonthlyHours(t *testing.T) {
	assert.Equal(t, 240, MonthlyHours(date(2023, time.January, 1)))
	assert.Equal(t, 230, MonthlyHours(date(2025, time.March, 1)))
	assert.Equal(t, 220, MonthlyHours(date(2025, time.August, 1)))
	assert.Equal(t, 210, MonthlyHours(date(2026, time.August, 1)))
}

func TestSundayHolidaySurchargeRate(t *testing.T) {
	assert.True(t, SundayHolidaySurchargeRate(date(2026, time.June, 30)).Equal(decimal.NewFromFloat(0.80)))
	assert.True(t, SundayHolidaySurchargeRate(date(2026, time.July, 1)).Equal(decimal.NewFromFloat(0.90)))
	assert.True(t, SundayHolidaySurchargeRate(date(2027, time.June, 30)).Equal(decimal.NewFromFloat(0.90)))
	assert.True(t, SundayHolidaySurchargeRate(date(2027, time.July, 1)).Equal(decimal.NewFromFloat(1.00)))
}

func TestNightShiftWindow(t *testing.T) {
	before := NightShiftWindow(date(2025, time.December, 24))
	assert.Equal(t, 21, before.StartHour)
	assert.Equal(t, 6, before.EndHour)

	after := NightShiftWindow(date(2025, time.December, 25))
	assert.Equal(t, 19, after.StartHour)
	assert.Equal(t, 6, after.EndHour)
}

func TestShiftConfiguration(t *testing.T) {
	t.Run("tarde_pm gains night hours after window change", func(t *testing.T) {
		before := ShiftConfiguration(ShiftTardePM, date(2025, time.December, 24))
		assert.Equal(t, 0, before.TotalNightHours())

		after := ShiftConfiguration(ShiftTardePM, date(2025, time.December, 25))
		assert.Equal(t, 2, after.TotalNightHours())
	})

	t.Run("trasnocho splits at midnight", func(t *testing.T) {
		cfg := ShiftConfiguration(ShiftTrasnocho, date(2025, time.August, 2))
		assert.True(t, cfg.CrossesMidnight)
		assert.Equal(t, 3, cfg.NightHoursBeforeMidnight)
		assert.Equal(t, 5, cfg.NightHoursAfterMidnight)
		assert.Equal(t, 8, cfg.TotalNightHours())
	})

	t.Run("diurno_am has no night hours", func(t *testing.T) {
		cfg := ShiftConfiguration(ShiftDiurnoAM, date(2026, time.August, 3))
		assert.Equal(t, 0, cfg.TotalNightHours())
	})
}

func TestShiftTypeValid(t *testing.T) {
	for _, s := range []ShiftType{
		ShiftDiurnoAM, ShiftTardePM, ShiftTrasnocho, ShiftIncapacidad,
		ShiftARL, ShiftVacaciones, ShiftLicenciaRemunerada,
		ShiftLicenciaNoRemunerada, ShiftMixto, ShiftDescanso, ShiftSuspendido,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ShiftType("nocturno").Valid())
}

func TestShiftTypeNoSurcharge(t *testing.T) {
	assert.True(t, ShiftIncapacidad.NoSurcharge())
	assert.True(t, ShiftVacaciones.NoSurcharge())
	assert.True(t, ShiftSuspendido.NoSurcharge())
	assert.False(t, ShiftDiurnoAM.NoSurcharge())
	assert.False(t, ShiftTrasnocho.NoSurcharge())
}
