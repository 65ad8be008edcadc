package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// DenylistHandler handles HTTP requests for the custom denylist.
type DenylistHandler struct {
	service *service.DenylistService
}

// NewDenylistHandler creates a new DenylistHandler.
func NewDenylistHandler(svc *service.DenylistService) *DenylistHandler {
	return &DenylistHandler{service: svc}
}

// HandleList handles GET /api/v1/denylist requests.
func (h *DenylistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing denylist", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleAdd handles POST /api/v1/denylist requests.
func (h *DenylistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req model.DenylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Add(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordRequired), errors.Is(err, service.ErrWordTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordExists):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.Error("adding denylist word", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleRemove handles DELETE /api/v1/denylist/{word} requests.
func (h *DenylistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	word, err := wordParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid word"))
		return
	}

	err = h.service.Remove(r.Context(), word)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordRequired), errors.Is(err, service.ErrWordTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("removing denylist word", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// wordParam returns the decoded {word} segment. chi matches against RawPath
// when it is set, so the segment is still escaped in that case.
func wordParam(r *http.Request) (string, error) {
	word := chi.URLParam(r, "word")
	if r.URL.RawPath == "" {
		return word, nil
	}
	return url.PathUnescape(word)
}
