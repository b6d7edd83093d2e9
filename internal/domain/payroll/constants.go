package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/laborlaw"
)

// Employee contribution rates over the IBC.
var (
	HealthRate  = decimal.NewFromFloat(0.04)
	PensionRate = decimal.NewFromFloat(0.04)
)

// Transport allowance is only paid up to this many minimum wages.
var MaxTransportAllowanceWages = decimal.NewFromInt(2)

// Provision rates (employer-funded, informational).
var (
	PrimaRate             = decimal.NewFromFloat(0.0833)
	CesantiasRate         = decimal.NewFromFloat(0.0833)
	CesantiasInterestRate = decimal.NewFromFloat(0.12) // annual; applied /12 monthly
	VacationRate          = decimal.NewFromFloat(0.0417)
)

// Employer contribution rates over the IBC.
var (
	EmployerHealthRate  = decimal.NewFromFloat(0.085)
	EmployerPensionRate = decimal.NewFromFloat(0.12)
	CajaRate            = decimal.NewFromFloat(0.04)
	SENARate            = decimal.NewFromFloat(0.02)
	ICBFRate            = decimal.NewFromFloat(0.03)
)

// Art. 114-1 E.T.: employers are exonerated from health, SENA and ICBF
// for workers earning under this many minimum wages.
var ExonerationThresholdWages = decimal.NewFromInt(10)

// ARL contribution rate by risk level (Decreto 1772 de 1994 table).
var arlRiskRates = map[int]decimal.Decimal{
	1: decimal.NewFromFloat(0.00522),
	2: decimal.NewFromFloat(0.01044),
	3: decimal.NewFromFloat(0.02436),
	4: decimal.NewFromFloat(0.04350),
	5: decimal.NewFromFloat(0.06960),
}

const DefaultARLRiskLevel = 1

// ARLRate returns the contribution rate for a risk level, falling back
// to level 1 for out-of-range values.
func ARLRate(level int) decimal.Decimal {
	if rate, ok := arlRiskRates[level]; ok {
		return rate
	}
	return arlRiskRates[DefaultARLRiskLevel]
}

// fspBracket applies the given rate when the IBC, expressed in minimum
// wages, falls in [from, to).
type fspBracket struct {
	from decimal.Decimal
	to   decimal.Decimal
	rate decimal.Decimal
}

// Fondo de Solidaridad Pensional brackets (Ley 100 Art. 27): nothing
// below 4 minimum wages, then 1% up to 16, stepping to 2% above 20.
var fspBrackets = []fspBracket{
	{decimal.NewFromInt(4), decimal.NewFromInt(16), decimal.NewFromFloat(0.010)},
	{decimal.NewFromInt(16), decimal.NewFromInt(17), decimal.NewFromFloat(0.012)},
	{decimal.NewFromInt(17), decimal.NewFromInt(18), decimal.NewFromFloat(0.014)},
	{decimal.NewFromInt(18), decimal.NewFromInt(19), decimal.NewFromFloat(0.016)},
	{decimal.NewFromInt(19), decimal.NewFromInt(20), decimal.NewFromFloat(0.018)},
}

var fspTopRate = decimal.NewFromFloat(0.020)

// FSPRate returns the solidarity-fund rate for an IBC expressed in
// minimum-wage multiples; zero below four minimum wages.
func FSPRate(wageMultiples decimal.Decimal) decimal.Decimal {
	if wageMultiples.LessThan(decimal.NewFromInt(4)) {
		return decimal.Zero
	}
	for _, b := range fspBrackets {
		if wageMultiples.GreaterThanOrEqual(b.from) && wageMultiples.LessThan(b.to) {
			return b.rate
		}
	}
	return fspTopRate
}

// withholdingBracket is one row of the Art. 383 E.T. progressive table,
// in UVT: tax = ((base - from) * rate + base_offset) * uvt.
type withholdingBracket struct {
	from decimal.Decimal
	to   decimal.Decimal
	rate decimal.Decimal
	base decimal.Decimal
}

var withholdingTable = []withholdingBracket{
	{decimal.Zero, decimal.NewFromInt(95), decimal.Zero, decimal.Zero},
	{decimal.NewFromInt(95), decimal.NewFromInt(150), decimal.NewFromFloat(0.19), decimal.Zero},
	{decimal.NewFromInt(150), decimal.NewFromInt(360), decimal.NewFromFloat(0.28), decimal.NewFromInt(10)},
	{decimal.NewFromInt(360), decimal.NewFromInt(640), decimal.NewFromFloat(0.33), decimal.NewFromInt(69)},
	{decimal.NewFromInt(640), decimal.NewFromInt(945), decimal.NewFromFloat(0.35), decimal.NewFromInt(162)},
	{decimal.NewFromInt(945), decimal.NewFromInt(2300), decimal.NewFromFloat(0.37), decimal.NewFromInt(268)},
}

var withholdingTopBracket = withholdingBracket{
	from: decimal.NewFromInt(2300),
	rate: decimal.NewFromFloat(0.39),
	base: decimal.NewFromInt(770),
}

// WithholdingBracketFor returns the bracket's from/rate/base for a
// taxable base expressed in UVT.
func WithholdingBracketFor(baseUVT decimal.Decimal) (from, rate, base decimal.Decimal) {
	for _, b := range withholdingTable {
		if baseUVT.GreaterThanOrEqual(b.from) && baseUVT.LessThan(b.to) {
			return b.from, b.rate, b.base
		}
	}
	return withholdingTopBracket.from, withholdingTopBracket.rate, withholdingTopBracket.base
}

// Caps on the optional withholding deductions, in UVT.
var (
	DependentsCapUVT      = decimal.NewFromInt(32)
	MedicalCapUVT         = decimal.NewFromInt(16)
	HousingInterestCapUVT = decimal.NewFromInt(100)
	ExemptCapUVT          = decimal.NewFromInt(240)
)

// DependentsRate is the fraction of gross income deductible for
// dependents, before the UVT cap.
var DependentsRate = decimal.NewFromFloat(0.10)

// ExemptRate is the 25% labor-income exemption applied to the remainder.
var ExemptRate = decimal.NewFromFloat(0.25)

// DefaultConfig returns a Config populated with the current year's
// published constants.
func DefaultConfig(userID string) Config {
	return Config{
		UserID:                    userID,
		TransportAllowanceEnabled: true,
		TransportAllowanceValue:   laborlaw.TransportAllowance,
		UVTValue:                  laborlaw.UVTValue,
		ARLRiskLevel:              DefaultARLRiskLevel,
		ExonerationEnabled:        true,
		DependentsEnabled:         false,
		MedicalDeduction:          decimal.Zero,
		HousingInterestDeduction:  decimal.Zero,
	}
}
