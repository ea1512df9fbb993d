package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message" example:"error message"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithServiceError maps an error kind to its status code. Errors of
// unknown kind are logged and hidden behind a generic 500.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAuthentication):
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrAuthorization):
		RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidOperation):
		RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("internal server error", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func QueryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, domain.Validation(fmt.Sprintf("%s is required", name))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Validation(fmt.Sprintf("%s must be a valid UUID", name))
	}
	return id, nil
}

func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.Validation(fmt.Sprintf("%s is required", name))
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Validation(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

func QueryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
