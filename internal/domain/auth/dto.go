package auth

import (
	"github.com/shopspring/decimal"

	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

type RegisterRequest struct {
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.FullName) < 2 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must be at least 2 characters long"})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not exceed 100 characters"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must not exceed 254 characters"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters long"})
	}
	if len(r.Password) > 128 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must not exceed 128 characters"})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

type AccessTokenResponse struct {
	AccessToken     string `json:"access_token"`
	AccessExpiresAt int64  `json:"access_expires_at"`
}
