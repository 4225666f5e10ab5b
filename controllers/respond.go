package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"loveconnect_server/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the service error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr   *services.ValidationError
		unauthorizedErr *services.UnauthorizedError
		notFoundErr     *services.NotFoundError
		stateErr        *services.InvalidStateError
		upstreamErr     *services.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": validationErr.Message})
	case errors.As(err, &unauthorizedErr):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": unauthorizedErr.Message})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": notFoundErr.Message})
	case errors.As(err, &stateErr):
		writeJSON(w, http.StatusConflict, map[string]string{"message": stateErr.Message})
	case errors.As(err, &upstreamErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": upstreamErr.Message})
	default:
		log.Printf("❌ Unhandled error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Something went wrong. Please try again later."})
	}
}
