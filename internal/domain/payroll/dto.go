package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

type ConfigResponse struct {
	TransportAllowanceEnabled bool            `json:"transport_allowance_enabled"`
	TransportAllowanceValue   decimal.Decimal `json:"transport_allowance_value"`
	UVTValue                  decimal.Decimal `json:"uvt_value"`
	ARLRiskLevel              int             `json:"arl_risk_level"`
	ExonerationEnabled        bool            `json:"exoneration_enabled"`
	DependentsEnabled         bool            `json:"dependents_enabled"`
	MedicalDeduction          decimal.Decimal `json:"medical_deduction"`
	HousingInterestDeduction  decimal.Decimal `json:"housing_interest_deduction"`
}

type UpdateConfigRequest struct {
	TransportAllowanceEnabled *bool            `json:"transport_allowance_enabled,omitempty"`
	TransportAllowanceValue   *decimal.Decimal `json:"transport_allowance_value,omitempty"`
	UVTValue                  *decimal.Decimal `json:"uvt_value,omitempty"`
	ARLRiskLevel              *int             `json:"arl_risk_level,omitempty"`
	ExonerationEnabled        *bool            `json:"exoneration_enabled,omitempty"`
	DependentsEnabled         *bool            `json:"dependents_enabled,omitempty"`
	MedicalDeduction          *decimal.Decimal `json:"medical_deduction,omitempty"`
	HousingInterestDeduction  *decimal.Decimal `json:"housing_interest_deduction,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TransportAllowanceValue != nil && r.TransportAllowanceValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance_value", Message: "must be non-negative"})
	}
	if r.UVTValue != nil && !r.UVTValue.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "uvt_value", Message: "must be positive"})
	}
	if r.ARLRiskLevel != nil && (*r.ARLRiskLevel < 1 || *r.ARLRiskLevel > 5) {
		errs = append(errs, validator.ValidationError{Field: "arl_risk_level", Message: "must be between 1 and 5"})
	}
	if r.MedicalDeduction != nil && r.MedicalDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "medical_deduction", Message: "must be non-negative"})
	}
	if r.HousingInterestDeduction != nil && r.HousingInterestDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "housing_interest_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WithholdingTrailResponse struct {
	GrossIncome       decimal.Decimal `json:"gross_income"`
	DeductionsApplied decimal.Decimal `json:"deductions_applied"`
	ExemptAmount      decimal.Decimal `json:"exempt_amount"`
	TaxableBaseUVT    decimal.Decimal `json:"taxable_base_uvt"`
	BracketRate       decimal.Decimal `json:"bracket_rate"`
}

// PayslipResponse is one month's payslip: the current month's regular
// pay combined with the previous month's surcharges.
type PayslipResponse struct {
	Month string `json:"month"`

	BaseSalary         decimal.Decimal `json:"base_salary"`
	RegularPay         decimal.Decimal `json:"regular_pay"`
	Surcharges         decimal.Decimal `json:"surcharges"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`

	IBC decimal.Decimal `json:"ibc"`

	HealthDeduction  decimal.Decimal          `json:"health_deduction"`
	PensionDeduction decimal.Decimal          `json:"pension_deduction"`
	FSPDeduction     decimal.Decimal          `json:"fsp_deduction"`
	WithholdingTax   decimal.Decimal          `json:"withholding_tax"`
	TotalDeductions  decimal.Decimal          `json:"total_deductions"`
	Withholding      WithholdingTrailResponse `json:"withholding_trail"`

	PrimaProvision     decimal.Decimal `json:"prima_provision"`
	CesantiasProvision decimal.Decimal `json:"cesantias_provision"`
	CesantiasInterest  decimal.Decimal `json:"cesantias_interest"`
	VacationProvision  decimal.Decimal `json:"vacation_provision"`

	EmployerHealth   decimal.Decimal `json:"employer_health"`
	EmployerPension  decimal.Decimal `json:"employer_pension"`
	EmployerARL      decimal.Decimal `json:"employer_arl"`
	CajaContribution decimal.Decimal `json:"caja_contribution"`
	SENAContribution decimal.Decimal `json:"sena_contribution"`
	ICBFContribution decimal.Decimal `json:"icbf_contribution"`

	NetPay decimal.Decimal `json:"net_pay"`
}
