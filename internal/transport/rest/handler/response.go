package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"quizbank/internal/model"
	"quizbank/internal/repository"
	"quizbank/internal/service"
	"quizbank/internal/transport/rest/middleware"
)

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps pipeline errors onto the error envelope.
// Server-side faults are logged with the request ID.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		storeErr      *repository.StoreUnavailableError
		completionErr *service.CompletionError
	)
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &storeErr), errors.As(err, &completionErr):
		log.Printf("[HTTP] %s %s failed: %v id=%s", r.Method, r.URL.Path, err, middleware.GetRequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("[HTTP] unhandled error: %v id=%s", err, middleware.GetRequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
