package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestTransportAllowance(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")

	t.Run("paid up to two minimum wages", func(t *testing.T) {
		got := c.TransportAllowance(money(2416500), cfg)
		assert.True(t, got.Equal(cfg.TransportAllowanceValue))
	})

	t.Run("exactly two minimum wages still qualifies", func(t *testing.T) {
		twoWages := laborlaw.MinimumWage.Mul(decimal.NewFromInt(2))
		got := c.TransportAllowance(twoWages, cfg)
		assert.True(t, got.Equal(cfg.TransportAllowanceValue))
	})

	t.Run("above two minimum wages pays nothing", func(t *testing.T) {
		got := c.TransportAllowance(money(3000000), cfg)
		assert.True(t, got.IsZero())
	})

	t.Run("disabled pays nothing", func(t *testing.T) {
		disabled := cfg
		disabled.TransportAllowanceEnabled = false
		got := c.TransportAllowance(money(1423500), disabled)
		assert.True(t, got.IsZero())
	})
}

func TestFSPDeduction(t *testing.T) {
	c := NewCalculator()

	t.Run("below four minimum wages pays nothing", func(t *testing.T) {
		ibc := laborlaw.MinimumWage.Mul(decimal.NewFromFloat(3.99))
		assert.True(t, c.FSPDeduction(ibc).IsZero())
	})

	t.Run("four minimum wages pays one percent", func(t *testing.T) {
		ibc := laborlaw.MinimumWage.Mul(decimal.NewFromInt(4))
		got := c.FSPDeduction(ibc)
		expected := ibc.Mul(decimal.NewFromFloat(0.01)).Round(0)
		assert.True(t, got.Equal(expected), "got %s", got)
	})

	t.Run("sixteen minimum wages steps up", func(t *testing.T) {
		ibc := laborlaw.MinimumWage.Mul(decimal.NewFromInt(16))
		got := c.FSPDeduction(ibc)
		expected := ibc.Mul(decimal.NewFromFloat(0.012)).Round(0)
		assert.True(t, got.Equal(expected))
	})
}

func TestWithholdingTax(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")

	t.Run("modest income pays nothing", func(t *testing.T) {
		ibc := money(2300000)
		health := money(92000)
		pension := money(92000)

		tax, trail := c.WithholdingTax(ibc, health, pension, decimal.Zero, cfg)

		assert.True(t, tax.IsZero())
		assert.True(t, trail.GrossIncome.Equal(ibc))
		assert.True(t, trail.BracketRate.IsZero())
		assert.True(t, trail.TaxableBaseUVT.LessThan(decimal.NewFromInt(95)))
	})

	t.Run("high income is taxed", func(t *testing.T) {
		ibc := money(30000000)
		health := ibc.Mul(payroll.HealthRate).Round(0)
		pension := ibc.Mul(payroll.PensionRate).Round(0)
		fsp := c.FSPDeduction(ibc)

		tax, trail := c.WithholdingTax(ibc, health, pension, fsp, cfg)

		assert.True(t, tax.IsPositive())
		assert.True(t, trail.BracketRate.IsPositive())
		assert.True(t, tax.Equal(tax.Round(0)), "tax must be whole pesos")
	})

	t.Run("dependents deduction lowers the tax", func(t *testing.T) {
		withDependents := cfg
		withDependents.DependentsEnabled = true

		ibc := money(30000000)
		health := ibc.Mul(payroll.HealthRate).Round(0)
		pension := ibc.Mul(payroll.PensionRate).Round(0)
		fsp := c.FSPDeduction(ibc)

		base, _ := c.WithholdingTax(ibc, health, pension, fsp, cfg)
		reduced, trail := c.WithholdingTax(ibc, health, pension, fsp, withDependents)

		assert.True(t, reduced.LessThan(base))
		assert.True(t, trail.DeductionsApplied.GreaterThan(health.Add(pension).Add(fsp)))
	})

	t.Run("exempt amount is capped at 240 UVT", func(t *testing.T) {
		ibc := money(80000000)
		health := ibc.Mul(payroll.HealthRate).Round(0)
		pension := ibc.Mul(payroll.PensionRate).Round(0)
		fsp := c.FSPDeduction(ibc)

		_, trail := c.WithholdingTax(ibc, health, pension, fsp, cfg)

		cap := payroll.ExemptCapUVT.Mul(cfg.UVTValue).Round(0)
		assert.True(t, trail.ExemptAmount.Equal(cap), "got %s want %s", trail.ExemptAmount, cap)
	})
}

func TestCalculate(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")

	baseSalary := money(2416500)
	regularPay := money(2000000)
	surcharges := money(300000)

	calc := c.Calculate(baseSalary, regularPay, surcharges, cfg)

	// Earnings
	assert.True(t, calc.TransportAllowance.Equal(money(200000)))
	assert.True(t, calc.TotalEarnings.Equal(money(2500000)))
	assert.True(t, calc.IBC.Equal(money(2300000)), "IBC excludes the transport allowance")

	// Employee deductions
	assert.True(t, calc.HealthDeduction.Equal(money(92000)))
	assert.True(t, calc.PensionDeduction.Equal(money(92000)))
	assert.True(t, calc.FSPDeduction.IsZero())
	assert.True(t, calc.WithholdingTax.IsZero())
	assert.True(t, calc.TotalDeductions.Equal(money(184000)))
	assert.True(t, calc.NetPay.Equal(money(2316000)))

	// Provisions: prima and cesantías on salary plus transport,
	// vacation on salary only.
	assert.True(t, calc.PrimaProvision.Equal(money(217954)), "got %s", calc.PrimaProvision)
	assert.True(t, calc.CesantiasProvision.Equal(money(217954)))
	assert.True(t, calc.CesantiasInterest.Equal(money(2180)), "got %s", calc.CesantiasInterest)
	assert.True(t, calc.VacationProvision.Equal(money(100768)), "got %s", calc.VacationProvision)

	// Employer contributions with Art. 114-1 exoneration: health, SENA
	// and ICBF zeroed for salaries under ten minimum wages.
	assert.True(t, calc.EmployerHealth.IsZero())
	assert.True(t, calc.SENAContribution.IsZero())
	assert.True(t, calc.ICBFContribution.IsZero())
	assert.True(t, calc.EmployerPension.Equal(money(276000)))
	assert.True(t, calc.EmployerARL.Equal(money(12006)), "got %s", calc.EmployerARL)
	assert.True(t, calc.CajaContribution.Equal(money(92000)))
}

func TestCalculate_ExonerationDisabled(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")
	cfg.ExonerationEnabled = false

	calc := c.Calculate(money(2416500), money(2000000), money(300000), cfg)

	ibc := money(2300000)
	assert.True(t, calc.EmployerHealth.Equal(ibc.Mul(payroll.EmployerHealthRate).Round(0)))
	assert.True(t, calc.SENAContribution.Equal(ibc.Mul(payroll.SENARate).Round(0)))
	assert.True(t, calc.ICBFContribution.Equal(ibc.Mul(payroll.ICBFRate).Round(0)))
}

func TestCalculate_HighSalaryKeepsContributions(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")

	// Ten minimum wages: exoneration no longer applies even when enabled.
	baseSalary := laborlaw.MinimumWage.Mul(decimal.NewFromInt(10))
	calc := c.Calculate(baseSalary, baseSalary, decimal.Zero, cfg)

	assert.True(t, calc.EmployerHealth.IsPositive())
	assert.True(t, calc.SENAContribution.IsPositive())
	assert.True(t, calc.ICBFContribution.IsPositive())
	assert.True(t, calc.TransportAllowance.IsZero(), "high earners get no transport allowance")
}

func TestCalculate_DeductionsAreWholePesos(t *testing.T) {
	c := NewCalculator()
	cfg := payroll.DefaultConfig("u1")

	calc := c.Calculate(money(1999999), money(1733333), money(123457), cfg)

	for name, v := range map[string]decimal.Decimal{
		"health":    calc.HealthDeduction,
		"pension":   calc.PensionDeduction,
		"fsp":       calc.FSPDeduction,
		"tax":       calc.WithholdingTax,
		"prima":     calc.PrimaProvision,
		"cesantias": calc.CesantiasProvision,
		"interest":  calc.CesantiasInterest,
		"vacation":  calc.VacationProvision,
		"arl":       calc.EmployerARL,
	} {
		assert.True(t, v.Equal(v.Round(0)), "%s has decimals: %s", name, v)
	}
}
