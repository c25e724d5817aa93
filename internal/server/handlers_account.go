package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/simonvc/minibank/internal/bank"
)

type amountRequest struct {
	Amount *float64 `json:"amount"`
}

type balanceResponse struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.account.Snapshot())
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	snap := s.account.Snapshot()
	writeJSON(w, http.StatusOK, balanceResponse{
		AccountID: snap.ID,
		Balance:   snap.Balance,
		Formatted: bank.FormatAmount(snap.Balance),
	})
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	snap, err := s.account.Deposit(amount)
	if err != nil {
		log.Printf("deposit %v to %s rejected: %v", amount, snap.ID, err)
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	snap, err := s.account.Withdraw(amount)
	if err != nil {
		log.Printf("withdraw %v from %s rejected: %v", amount, snap.ID, err)
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) closeAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.account.Close())
}

// decodeAmount reads {"amount": n} and writes a 400 itself when the body is unusable.
func decodeAmount(w http.ResponseWriter, r *http.Request) (float64, bool) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return 0, false
	}
	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "amount is required")
		return 0, false
	}
	return *req.Amount, true
}
