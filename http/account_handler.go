package http

import (
	"encoding/json"
	"net/http"

	"debt-planner/domain"
	"debt-planner/repository"
)

type AccountHandler struct {
	repo repository.AccountRepository
}

func NewAccountHandler(repo repository.AccountRepository) *AccountHandler {
	return &AccountHandler{repo: repo}
}

// Accounts serves GET (list active accounts) and POST (create or update one).
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w)
	case http.MethodPost:
		h.save(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AccountHandler) list(w http.ResponseWriter) {
	accounts, err := h.repo.ListActive()
	if err != nil {
		http.Error(w, "failed to list accounts", http.StatusInternalServerError)
		return
	}
	if accounts == nil {
		accounts = []domain.DebtAccount{}
	}
	writeJSON(w, accounts)
}

func (h *AccountHandler) save(w http.ResponseWriter, r *http.Request) {
	var account domain.DebtAccount
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if account.Balance < 0 || account.AnnualInterestRate < 0 || account.MinimumPayment < 0 {
		http.Error(w, "balance, rate, and minimum payment must not be negative", http.StatusBadRequest)
		return
	}

	if err := h.repo.Save(&account); err != nil {
		http.Error(w, "failed to save account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}
