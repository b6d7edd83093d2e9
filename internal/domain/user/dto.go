package user

import (
	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

const maxBaseSalary = 100000000

type ProfileResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

// UpdateProfileRequest replaces the profile fields; the settings form
// resubmits both.
type UpdateProfileRequest struct {
	FullName   string          `json:"full_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.FullName) < 2 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must be at least 2 characters long"})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not exceed 100 characters"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.BaseSalary.GreaterThan(decimal.NewFromInt(maxBaseSalary)) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is unrealistically large"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
