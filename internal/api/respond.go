package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nivethitha870/BANK/internal/dto"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service and repository errors onto status codes:
// validation failures are 400, bad credentials 401, missing records 404,
// anything else is a persistence failure and stays opaque.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrAccountNotFound),
		errors.Is(err, repository.ErrCardNotFound),
		errors.Is(err, repository.ErrLoanNotFound),
		errors.Is(err, repository.ErrInvestmentNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "persistence unavailable"})
	}
}
