package httputil

import (
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	BadRequestFields(w, msg, nil, err)
}

// BadRequestFields rejects the request and names the offending fields.
func BadRequestFields(w http.ResponseWriter, msg string, fields map[string]string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Fields: fields})
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

func ServiceUnavailable(w http.ResponseWriter, msg string, err error) {
	slog.Warn("service unavailable", "message", msg, "error", err)
	WriteJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: msg})
}
