package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/report"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type reportService struct {
	workDayService workday.Service
	payrollService payroll.Service
}

func NewReportService(workDayService workday.Service, payrollService payroll.Service) report.Service {
	return &reportService{
		workDayService: workDayService,
		payrollService: payrollService,
	}
}

// MonthlyExcel builds the month workbook: one row per logged day with
// the full pay breakdown, a totals row, and the monthly summary block.
func (s *reportService) MonthlyExcel(ctx context.Context, userID string, year int, month time.Month) (report.File, error) {
	list, err := s.workDayService.ListMonth(ctx, userID, year, month)
	if err != nil {
		return report.File{}, fmt.Errorf("list month: %w", err)
	}
	summary, err := s.workDayService.MonthlySummary(ctx, userID, year, month)
	if err != nil {
		return report.File{}, fmt.Errorf("monthly summary: %w", err)
	}

	f := excelize.NewFile()
	sheetName := summary.Month
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return report.File{}, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{
		"Fecha", "Turno", "Horas", "Horas extra", "Festivo",
		"Pago ordinario", "Recargo nocturno", "Recargo nocturno dominical",
		"Recargo dominical/festivo", "Horas extra pago", "Total", "Notas",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, day := range list.Data {
		holiday := ""
		if day.IsHoliday {
			holiday = "Sí"
			if day.HolidayName != nil {
				holiday = *day.HolidayName
			}
		}
		notes := ""
		if day.Notes != nil {
			notes = *day.Notes
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), day.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), day.ShiftType)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), day.RegularHours)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), day.ExtraHours)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), holiday)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), toFloat(day.RegularPay))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), toFloat(day.NightSurcharge))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), toFloat(day.SundayNightSurcharge))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), toFloat(day.HolidaySurcharge))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowIndex), toFloat(day.ExtraHoursPay))
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", rowIndex), toFloat(day.TotalPay))
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", rowIndex), notes)
		rowIndex++
	}

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), "Totales")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), summary.TotalHours)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), toFloat(summary.TotalRegularPay))
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), toFloat(summary.TotalNightSurcharge))
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), toFloat(summary.TotalSundayNightSurcharge))
	f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), toFloat(summary.TotalHolidaySurcharge))
	f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowIndex), toFloat(summary.TotalExtraHoursPay))
	f.SetCellValue(sheetName, fmt.Sprintf("K%d", rowIndex), toFloat(summary.TotalPay))

	rowIndex += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), "Días trabajados")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), summary.DaysWorked)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.File{}, fmt.Errorf("write workbook: %w", err)
	}

	return report.File{
		FileName:    fmt.Sprintf("jornadas-%s.xlsx", summary.Month),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}

// PayslipPDF renders the month's payslip: earnings, deductions with the
// withholding trail, provisions and employer contributions.
func (s *reportService) PayslipPDF(ctx context.Context, userID string, year int, month time.Month) (report.File, error) {
	slip, err := s.payrollService.Payslip(ctx, userID, year, month)
	if err != nil {
		return report.File{}, fmt.Errorf("payslip: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Nomina %s", slip.Month))
	pdf.Ln(12)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(label string, amount decimal.Decimal) {
		pdf.Cell(110, 7, label)
		pdf.CellFormat(60, 7, fmt.Sprintf("$ %s", amount.Round(0).String()), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	section("Devengos")
	line("Salario base", slip.BaseSalary)
	line("Pago ordinario del mes", slip.RegularPay)
	line("Recargos del mes anterior", slip.Surcharges)
	line("Auxilio de transporte", slip.TransportAllowance)
	line("Total devengado", slip.TotalEarnings)
	pdf.Ln(4)

	section("Deducciones")
	line("IBC", slip.IBC)
	line("Salud (4%)", slip.HealthDeduction)
	line("Pension (4%)", slip.PensionDeduction)
	line("Fondo de solidaridad pensional", slip.FSPDeduction)
	line("Retencion en la fuente", slip.WithholdingTax)
	line("Total deducciones", slip.TotalDeductions)
	pdf.Ln(4)

	section("Provisiones del empleador")
	line("Prima de servicios", slip.PrimaProvision)
	line("Cesantias", slip.CesantiasProvision)
	line("Intereses de cesantias", slip.CesantiasInterest)
	line("Vacaciones", slip.VacationProvision)
	pdf.Ln(4)

	section("Aportes del empleador")
	line("Salud (8.5%)", slip.EmployerHealth)
	line("Pension (12%)", slip.EmployerPension)
	line("ARL", slip.EmployerARL)
	line("Caja de compensacion", slip.CajaContribution)
	line("SENA", slip.SENAContribution)
	line("ICBF", slip.ICBFContribution)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(110, 9, "Neto a pagar")
	pdf.CellFormat(60, 9, fmt.Sprintf("$ %s", slip.NetPay.Round(0).String()), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.File{}, fmt.Errorf("render pdf: %w", err)
	}

	return report.File{
		FileName:    fmt.Sprintf("nomina-%s.pdf", slip.Month),
		ContentType: pdfContentType,
		Content:     buf.Bytes(),
	}, nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
