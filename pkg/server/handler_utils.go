package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/embedviz/embedviz/internal"
)

var log = internal.GetLogger()

var validate = validator.New()

// APIError represents an error response body.
type APIError struct {
	Message string `json:"message"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders an error response. Server errors are logged; client
// errors are returned as-is without logging.
func renderError(w http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Error(err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIError{Message: err.Error()}); err != nil {
		log.Errorf("error encoding error response: %v", err)
	}
}
