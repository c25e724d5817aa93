package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/simonvc/minibank/internal/bank"
)

type errorResponse struct {
	Error string    `json:"error"`
	Kind  bank.Kind `json:"kind,omitempty"`
}

// writeJSON marshals before writing the header so an unencodable value
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode response: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeAccountError(w http.ResponseWriter, err error) {
	writeJSON(w, mapError(err), errorResponse{Error: err.Error(), Kind: bank.KindOf(err)})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, bank.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, bank.ErrAmountOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, bank.ErrInvalidOperation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
