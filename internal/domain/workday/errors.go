package workday

import "errors"

var (
	ErrWorkDayNotFound   = errors.New("work day not found")
	ErrWorkDayExists     = errors.New("a work day is already registered for this date")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrDateRangeTooLarge = errors.New("date range exceeds 92 days")
)
