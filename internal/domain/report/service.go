package report

import (
	"context"
	"time"
)

// File is a generated export ready to be streamed to the client.
type File struct {
	FileName    string
	ContentType string
	Content     []byte
}

type Service interface {
	// MonthlyExcel builds an .xlsx workbook with the month's per-day
	// breakdown and totals.
	MonthlyExcel(ctx context.Context, userID string, year int, month time.Month) (File, error)
	// PayslipPDF renders the month's payslip as a PDF document.
	PayslipPDF(ctx context.Context, userID string, year int, month time.Month) (File, error)
}
