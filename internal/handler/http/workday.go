package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/handler/http/response"
)

type WorkDayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	MonthlySurcharges(w http.ResponseWriter, r *http.Request)
}

type workDayHandlerImpl struct {
	workDayService workday.Service
}

func NewWorkDayHandler(workDayService workday.Service) WorkDayHandler {
	return &workDayHandlerImpl{workDayService: workDayService}
}

func (h *workDayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req workday.CreateWorkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workDayService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work day registered", result)
}

func (h *workDayHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req workday.BulkCreateWorkDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workDayService.BulkCreate(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work days registered", result)
}

func (h *workDayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work day ID is required", nil)
		return
	}

	var req workday.UpdateWorkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.workDayService.Update(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workDayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work day ID is required", nil)
		return
	}

	if err := h.workDayService.Delete(r.Context(), userID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work day deleted", nil)
}

func (h *workDayHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.workDayService.ListMonth(r.Context(), userID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workDayHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.workDayService.MonthlySummary(r.Context(), userID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workDayHandlerImpl) MonthlySurcharges(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.workDayService.MonthlySurcharges(r.Context(), userID, month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
