package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/embedviz/embedviz/pkg/models"
)

// HealthCheckHandler returns a handler for GET requests to /health
func HealthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	if err := encodeJSON(w, models.HealthCheckResponse{Status: "healthy"}); err != nil {
		renderError(w, err, http.StatusInternalServerError)
	}
}

// VisualizeHandler returns a handler for POST requests to /visualize
func VisualizeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.VisualizationRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, fmt.Errorf("malformed request body: %w", err), http.StatusBadRequest)
			return
		}

		if err := validate.Struct(request); err != nil {
			var message string
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				message = verrs[0].Error()
			} else {
				message = err.Error()
			}
			renderError(w, models.NewValidationError(message), http.StatusUnprocessableEntity)
			return
		}

		response, err := appState.Visualizer.Visualize(r.Context(), &request)
		if err != nil {
			// a batch can pass shape validation yet collapse below the
			// projection floor once duplicates are deduplicated
			if errors.Is(err, models.ErrValidation) {
				renderError(w, err, http.StatusUnprocessableEntity)
				return
			}
			renderError(
				w,
				fmt.Errorf("failed to process texts: %w", err),
				http.StatusInternalServerError,
			)
			return
		}

		if err := encodeJSON(w, response); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}
