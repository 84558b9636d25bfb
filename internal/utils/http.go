package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. It returns the number of body bytes
// written.
//
// A value that cannot be marshaled is answered with 500 and no partial body,
// so callers never leak a half-written user list.
//
//	utils.WriteJSON(w, users, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	return writeBody(w, "application/json", body, statusCode)
}

// WriteText writes s as a UTF-8 plain-text body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	return writeBody(w, "text/plain; charset=utf-8", []byte(s), statusCode)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	if h.Get("Content-Encoding") == "" {
		h.Set("Content-Length", strconv.Itoa(len(body)))
	}
	w.WriteHeader(statusCode)

	return w.Write(body)
}
