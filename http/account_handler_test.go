package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"debt-planner/domain"
	"debt-planner/repository"
)

func TestAccountsHandler_ListEmpty(t *testing.T) {
	handler := NewAccountHandler(repository.NewAccountRepositoryMemory())

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	w := httptest.NewRecorder()

	handler.Accounts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty array, got %q", body)
	}
}

func TestAccountsHandler_CreateAndList(t *testing.T) {
	repo := repository.NewAccountRepositoryMemory()
	handler := NewAccountHandler(repo)

	body := []byte(`{"name": "Card A", "balance": 1000, "annual_interest_rate": 20, "minimum_payment": 50}`)
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Accounts(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created domain.DebtAccount
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if created.ID == "" {
		t.Error("expected the created account to be assigned an id")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	listW := httptest.NewRecorder()
	handler.Accounts(listW, listReq)

	var accounts []domain.DebtAccount
	if err := json.Unmarshal(listW.Body.Bytes(), &accounts); err != nil {
		t.Fatalf("invalid list json: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != created.ID {
		t.Errorf("expected the created account in the list, got %+v", accounts)
	}
}

func TestAccountsHandler_BadRequest(t *testing.T) {
	handler := NewAccountHandler(repository.NewAccountRepositoryMemory())

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer([]byte(`{oops`)))
	w := httptest.NewRecorder()

	handler.Accounts(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAccountsHandler_NegativeBalance(t *testing.T) {
	handler := NewAccountHandler(repository.NewAccountRepositoryMemory())

	body := []byte(`{"name": "Bad", "balance": -100, "annual_interest_rate": 10, "minimum_payment": 20}`)
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Accounts(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAccountsHandler_MethodNotAllowed(t *testing.T) {
	handler := NewAccountHandler(repository.NewAccountRepositoryMemory())

	req := httptest.NewRequest(http.MethodDelete, "/accounts", nil)
	w := httptest.NewRecorder()

	handler.Accounts(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
