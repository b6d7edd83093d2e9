package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
)

// Calculator turns a month's earnings into the full payslip:
// transport allowance, contribution base, employee deductions,
// withholding tax, employer provisions and contributions, net pay.
// Deduction amounts are rounded to whole pesos at each step so a
// recomputation always matches what was displayed.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// TransportAllowance is paid only when the base salary does not exceed
// two minimum wages, and can be disabled or overridden per user.
func (c *Calculator) TransportAllowance(baseSalary decimal.Decimal, cfg payroll.Config) decimal.Decimal {
	if !cfg.TransportAllowanceEnabled {
		return decimal.Zero
	}
	maxSalary := laborlaw.MinimumWage.Mul(payroll.MaxTransportAllowanceWages)
	if baseSalary.GreaterThan(maxSalary) {
		return decimal.Zero
	}
	return cfg.TransportAllowanceValue
}

// IBC is the contribution base: everything earned except the transport
// allowance, which the law excludes.
func (c *Calculator) IBC(regularPay, surcharges decimal.Decimal) decimal.Decimal {
	return regularPay.Add(surcharges)
}

// FSPDeduction applies the Fondo de Solidaridad Pensional rate when the
// IBC reaches four minimum wages.
func (c *Calculator) FSPDeduction(ibc decimal.Decimal) decimal.Decimal {
	wageMultiples := ibc.Div(laborlaw.MinimumWage)
	rate := payroll.FSPRate(wageMultiples)
	if rate.IsZero() {
		return decimal.Zero
	}
	return ibc.Mul(rate).Round(0)
}

// WithholdingTax computes the Art. 383 E.T. procedure-1 monthly
// withholding. Gross income is the IBC; mandatory health, pension and
// FSP come off first, then the capped optional deductions, then the
// 25% labor exemption, and the remainder in UVT goes through the
// progressive bracket table. Never negative.
func (c *Calculator) WithholdingTax(ibc, health, pension, fsp decimal.Decimal, cfg payroll.Config) (decimal.Decimal, payroll.WithholdingTrail) {
	uvt := cfg.UVTValue

	deductions := health.Add(pension).Add(fsp)

	if cfg.DependentsEnabled {
		dependents := decimal.Min(ibc.Mul(payroll.DependentsRate), payroll.DependentsCapUVT.Mul(uvt))
		deductions = deductions.Add(dependents.Round(0))
	}
	if cfg.MedicalDeduction.IsPositive() {
		medical := decimal.Min(cfg.MedicalDeduction, payroll.MedicalCapUVT.Mul(uvt))
		deductions = deductions.Add(medical.Round(0))
	}
	if cfg.HousingInterestDeduction.IsPositive() {
		housing := decimal.Min(cfg.HousingInterestDeduction, payroll.HousingInterestCapUVT.Mul(uvt))
		deductions = deductions.Add(housing.Round(0))
	}

	remainder := ibc.Sub(deductions)
	if remainder.IsNegative() {
		remainder = decimal.Zero
	}

	exempt := decimal.Min(remainder.Mul(payroll.ExemptRate), payroll.ExemptCapUVT.Mul(uvt)).Round(0)

	taxable := remainder.Sub(exempt)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	taxableUVT := taxable.Div(uvt)

	from, rate, base := payroll.WithholdingBracketFor(taxableUVT)

	trail := payroll.WithholdingTrail{
		GrossIncome:       ibc,
		DeductionsApplied: deductions,
		ExemptAmount:      exempt,
		TaxableBaseUVT:    taxableUVT,
		BracketRate:       rate,
	}

	if rate.IsZero() {
		return decimal.Zero, trail
	}

	taxUVT := taxableUVT.Sub(from).Mul(rate).Add(base)
	tax := taxUVT.Mul(uvt).Round(0)
	if tax.IsNegative() {
		tax = decimal.Zero
	}
	return tax, trail
}

// Calculate produces one month's payslip from the base salary, the
// month's regular pay and the surcharge total being paid this cycle.
func (c *Calculator) Calculate(baseSalary, regularPay, surcharges decimal.Decimal, cfg payroll.Config) payroll.Calculation {
	transportAllowance := c.TransportAllowance(baseSalary, cfg)
	totalEarnings := regularPay.Add(surcharges).Add(transportAllowance)
	ibc := c.IBC(regularPay, surcharges)

	health := ibc.Mul(payroll.HealthRate).Round(0)
	pension := ibc.Mul(payroll.PensionRate).Round(0)
	fsp := c.FSPDeduction(ibc)
	withholding, trail := c.WithholdingTax(ibc, health, pension, fsp, cfg)
	totalDeductions := health.Add(pension).Add(fsp).Add(withholding)

	// Provisions accrue on salary plus transport allowance, except
	// vacation which accrues on salary only.
	salaryPlusTransport := baseSalary.Add(transportAllowance)
	prima := salaryPlusTransport.Mul(payroll.PrimaRate).Round(0)
	cesantias := salaryPlusTransport.Mul(payroll.CesantiasRate).Round(0)
	cesantiasInterest := cesantias.Mul(payroll.CesantiasInterestRate).Div(decimal.NewFromInt(12)).Round(0)
	vacation := baseSalary.Mul(payroll.VacationRate).Round(0)

	employerHealth := ibc.Mul(payroll.EmployerHealthRate).Round(0)
	employerPension := ibc.Mul(payroll.EmployerPensionRate).Round(0)
	employerARL := ibc.Mul(payroll.ARLRate(cfg.ARLRiskLevel)).Round(0)
	caja := ibc.Mul(payroll.CajaRate).Round(0)
	sena := ibc.Mul(payroll.SENARate).Round(0)
	icbf := ibc.Mul(payroll.ICBFRate).Round(0)

	// Art. 114-1 E.T.: employers of workers under ten minimum wages are
	// exonerated from health, SENA and ICBF contributions.
	if cfg.ExonerationEnabled && baseSalary.LessThan(laborlaw.MinimumWage.Mul(payroll.ExonerationThresholdWages)) {
		employerHealth = decimal.Zero
		sena = decimal.Zero
		icbf = decimal.Zero
	}

	return payroll.Calculation{
		BaseSalary:         baseSalary,
		RegularPay:         regularPay,
		Surcharges:         surcharges,
		TransportAllowance: transportAllowance,
		TotalEarnings:      totalEarnings,

		IBC: ibc,

		HealthDeduction:  health,
		PensionDeduction: pension,
		FSPDeduction:     fsp,
		WithholdingTax:   withholding,
		TotalDeductions:  totalDeductions,
		Withholding:      trail,

		PrimaProvision:     prima,
		CesantiasProvision: cesantias,
		CesantiasInterest:  cesantiasInterest,
		VacationProvision:  vacation,

		EmployerHealth:   employerHealth,
		EmployerPension:  employerPension,
		EmployerARL:      employerARL,
		CajaContribution: caja,
		SENAContribution: sena,
		ICBFContribution: icbf,

		NetPay: totalEarnings.Sub(totalDeductions),
	}
}
