package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/entities"
)

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writeJSON encode error", "error", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into v, reading at most maxBodyBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.UseNumber()
	return dec.Decode(v)
}

// searchErrorToHTTP maps search errors to HTTP responses.
func searchErrorToHTTP(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, filterql.ErrInvalidColumn):
		writeError(w, http.StatusBadRequest, "INVALID_COLUMN", err.Error())
	case errors.Is(err, filterql.ErrInvalidOperator):
		writeError(w, http.StatusBadRequest, "INVALID_OPERATOR", err.Error())
	case errors.Is(err, filterql.ErrInvalidLogicOperator):
		writeError(w, http.StatusBadRequest, "INVALID_LOGIC_OPERATOR", err.Error())
	case errors.Is(err, filterql.ErrInvalidPagination):
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", err.Error())
	case errors.Is(err, entities.ErrUnknownEntity):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		logger.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
