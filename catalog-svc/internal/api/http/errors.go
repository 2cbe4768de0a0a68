package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes. Anything unrecognized is
// logged and reported as a bare 500.
func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	var invalid validator.ValidationErrors
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.As(err, &invalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		message = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
