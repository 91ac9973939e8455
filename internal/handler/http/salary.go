package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	SetConfig(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	ListConfigs(w http.ResponseWriter, r *http.Request)
	GetMyConfig(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// SetConfig implements SalaryHandler.
func (h *SalaryHandlerImpl) SetConfig(w http.ResponseWriter, r *http.Request) {
	var req salary.SetConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	config, err := h.salaryService.SetConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration saved successfully", config)
}

// GetConfig implements SalaryHandler.
func (h *SalaryHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	config, err := h.salaryService.GetConfig(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}

// ListConfigs implements SalaryHandler.
func (h *SalaryHandlerImpl) ListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.salaryService.ListConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, configs)
}

// GetMyConfig implements SalaryHandler.
func (h *SalaryHandlerImpl) GetMyConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.salaryService.GetMyConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}
