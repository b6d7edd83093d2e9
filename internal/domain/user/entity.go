package user

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is one account of the tracker. Every work day and payroll config
// belongs to exactly one user; there is no sharing between accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	BaseSalary   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
