package middleware

import (
	"encoding/json"
	"net/http"
)

// writeErr sends the error envelope used across the API.
func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": code,
		"message":    message,
		"errors":     []interface{}{},
		"success":    false,
	})
}
