package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Pagajob/easyold-sub001/internal/edl"
	"github.com/Pagajob/easyold-sub001/internal/logger"
	"github.com/Pagajob/easyold-sub001/internal/service"
)

type errorResponse struct {
	Error  string           `json:"error"`
	Fields []edl.FieldError `json:"fields,omitempty"`
}

type listMeta struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
	Total    int32 `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Validation failures carry
// their field-level reasons so the operator app can highlight each one.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *edl.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "condition report rejected",
			Fields: validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidStateTransition),
		errors.Is(err, service.ErrReservationTerminal):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrMissingClientEmail):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// pathID parses the {id} route variable.
func pathID(vars map[string]string) (int32, error) {
	id, err := strconv.ParseInt(vars["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int32(id), nil
}

// pagination parses page/page_size query parameters with sane defaults.
func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
