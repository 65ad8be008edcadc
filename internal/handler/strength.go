package handler

import (
	"net/http"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// StrengthHandler handles HTTP requests for password strength checks.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleCheck handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Check(req))
}
