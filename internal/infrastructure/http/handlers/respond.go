package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	domainerrors "github.com/whiteelite/catalog/internal/domain/errors"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf("malformed request body: %v", err)})
		return false
	}

	// exactly one JSON value per body
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body: unexpected data after JSON value"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error kind to a status code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch domainerrors.Classify(err) {
	case domainerrors.ErrInvalid:
		status = http.StatusUnprocessableEntity
	case domainerrors.ErrConflict:
		status = http.StatusConflict
		message = conflictMessage(err)
	case domainerrors.ErrNotFound:
		status = http.StatusNotFound
	case domainerrors.ErrUnavailable:
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, errorBody{Error: message})
}

func conflictMessage(err error) string {
	var typed *domainerrors.Error
	if errors.As(err, &typed) && typed.Entity != "" {
		return typed.Entity + " already exists"
	}
	return "already exists"
}
