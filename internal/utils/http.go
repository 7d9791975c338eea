package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the HTTP response body. Every
// handler response in this service goes through it: message envelopes,
// error envelopes, and raw user/book entities alike.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided status code before the body. If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error; the number
// of bytes written is reported so the logging middleware can record the
// response size.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "Book added!"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Book not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
