package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/report"
	"github.com/andresaoe/mi-jornada-calculada/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyExcel(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) MonthlyExcel(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, ok := monthFromQuery(r)
	if !ok {
		response.BadRequest(w, "month query parameter must be in YYYY-MM format", nil)
		return
	}

	file, err := h.reportService.MonthlyExcel(r.Context(), userID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

func (h *reportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, ok := monthFromQuery(r)
	if !ok {
		response.BadRequest(w, "month query parameter must be in YYYY-MM format", nil)
		return
	}

	file, err := h.reportService.PayslipPDF(r.Context(), userID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

func writeFile(w http.ResponseWriter, file report.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
