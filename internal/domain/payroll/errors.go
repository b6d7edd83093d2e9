package payroll

import "errors"

var (
	ErrConfigNotFound = errors.New("payroll config not found")
	ErrInvalidMonth   = errors.New("invalid payroll month")
)
