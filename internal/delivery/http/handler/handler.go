package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/request"
	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/response"
	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/digitalnycagency/seo-audit-api/internal/usecase"
	"go.uber.org/zap"
)

// Handler serves the audit API. It keeps no per-request state.
type Handler struct {
	auditor usecase.Auditor
	logger  *zap.Logger
}

func NewHandler(auditor usecase.Auditor, logger *zap.Logger) *Handler {
	return &Handler{
		auditor: auditor,
		logger:  logger,
	}
}

// HandleSEOAudit runs one audit synchronously. A page that cannot be fetched
// is reported with status 200 and an error body.
func (h *Handler) HandleSEOAudit(w http.ResponseWriter, r *http.Request) {
	var req request.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSONError(w, response.MsgInvalidBody, http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		h.writeJSONError(w, response.MsgNoURL, http.StatusBadRequest)
		return
	}

	report, err := h.auditor.Audit(r.Context(), req.URL)
	if err != nil {
		var fetchErr *entity.FetchError
		switch {
		case errors.Is(err, usecase.ErrURLRequired):
			h.writeJSONError(w, response.MsgNoURL, http.StatusBadRequest)
		case errors.As(err, &fetchErr):
			h.writeJSONError(w, fetchErr.Error(), http.StatusOK)
		default:
			h.logger.Error("audit failed", zap.String("url", req.URL), zap.Error(err))
			h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, response.ErrorResponse{Error: message})
}
