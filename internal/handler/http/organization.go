package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateWorkPolicy(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	orgService org.OrganizationService
}

func NewOrganizationHandler(orgService org.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{orgService: orgService}
}

// Get implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	organization, err := h.orgService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, organization)
}

// UpdateWorkPolicy implements OrganizationHandler.
func (h *OrganizationHandlerImpl) UpdateWorkPolicy(w http.ResponseWriter, r *http.Request) {
	var req org.UpdateWorkPolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorkPolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	organization, err := h.orgService.UpdateWorkPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work policy updated successfully", organization)
}
