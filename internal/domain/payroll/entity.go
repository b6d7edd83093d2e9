package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the per-user overridable legal parameters read by the
// payroll calculator. Defaults come from the current year's published
// constants; the row is created lazily on first read.
type Config struct {
	UserID                    string
	TransportAllowanceEnabled bool
	TransportAllowanceValue   decimal.Decimal
	UVTValue                  decimal.Decimal
	ARLRiskLevel              int
	ExonerationEnabled        bool
	DependentsEnabled         bool
	MedicalDeduction          decimal.Decimal
	HousingInterestDeduction  decimal.Decimal
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// WithholdingTrail records how the Art. 383 procedure-1 withholding was
// derived, for display on the payslip.
type WithholdingTrail struct {
	GrossIncome       decimal.Decimal
	DeductionsApplied decimal.Decimal
	ExemptAmount      decimal.Decimal
	TaxableBaseUVT    decimal.Decimal
	BracketRate       decimal.Decimal
}

// Calculation is one month's full payslip. Deductions come out of the
// employee's pay; provisions and employer contributions are
// informational employer cost and never reduce net pay.
type Calculation struct {
	// Earnings
	BaseSalary         decimal.Decimal
	RegularPay         decimal.Decimal
	Surcharges         decimal.Decimal
	TransportAllowance decimal.Decimal
	TotalEarnings      decimal.Decimal

	// Contribution base (transport allowance excluded by law)
	IBC decimal.Decimal

	// Employee deductions
	HealthDeduction  decimal.Decimal
	PensionDeduction decimal.Decimal
	FSPDeduction     decimal.Decimal
	WithholdingTax   decimal.Decimal
	TotalDeductions  decimal.Decimal
	Withholding      WithholdingTrail

	// Employer provisions
	PrimaProvision     decimal.Decimal
	CesantiasProvision decimal.Decimal
	CesantiasInterest  decimal.Decimal
	VacationProvision  decimal.Decimal

	// Employer contributions
	EmployerHealth   decimal.Decimal
	EmployerPension  decimal.Decimal
	EmployerARL      decimal.Decimal
	CajaContribution decimal.Decimal
	SENAContribution decimal.Decimal
	ICBFContribution decimal.Decimal

	NetPay decimal.Decimal
}
