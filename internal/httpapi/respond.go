package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"imagevault/internal/common"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, errText string, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: errText, Message: message})
}

// sendError maps a service error to its HTTP status. Unrecognized errors
// become opaque 500s so internals do not leak into responses.
func sendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		sendErrorResponse(w, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		sendErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
	case errors.Is(err, common.ErrInvalidToken):
		sendErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
	case errors.Is(err, common.ErrForbidden):
		sendErrorResponse(w, http.StatusForbidden, "Forbidden", "Token does not describe a valid principal")
	case errors.Is(err, common.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, common.ErrConflict):
		sendErrorResponse(w, http.StatusConflict, "Conflict", err.Error())
	default:
		sendErrorResponse(w, http.StatusInternalServerError, "Internal server error", "")
	}
}
