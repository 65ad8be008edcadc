package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body uses the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePronounceable handles POST /api/v1/generate/pronounceable requests.
func (h *GeneratorHandler) HandleGeneratePronounceable(w http.ResponseWriter, r *http.Request) {
	var req model.PronounceableRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.GeneratePronounceable(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeGenerateError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthOutOfRange) ||
		errors.Is(err, crypto.ErrNoCharacterTypes)
}
