package http

import (
	"encoding/json"
	"net/http"

	"debt-planner/domain"
	"debt-planner/repository"
	"debt-planner/service"
)

type PlannerHandler struct {
	service *service.PlannerService
	repo    repository.AccountRepository
}

func NewPlannerHandler(service *service.PlannerService, repo repository.AccountRepository) *PlannerHandler {
	return &PlannerHandler{service: service, repo: repo}
}

type simulateRequest struct {
	Accounts     []domain.DebtAccount `json:"accounts"`
	Strategy     domain.Strategy      `json:"strategy"`
	ExtraPayment float64              `json:"extra_payment"`
}

type compareRequest struct {
	Accounts     []domain.DebtAccount `json:"accounts"`
	ExtraPayment float64              `json:"extra_payment"`
}

type compareStoredRequest struct {
	ExtraPayment float64 `json:"extra_payment"`
}

type projectRequest struct {
	Accounts      []domain.DebtAccount `json:"accounts"`
	HorizonMonths int                  `json:"horizon_months"`
}

type allocateRequest struct {
	Accounts     []domain.DebtAccount `json:"accounts"`
	ExtraPayment float64              `json:"extra_payment"`
}

func (h *PlannerHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(req.Accounts, req.Strategy, req.ExtraPayment)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, result)
}

func (h *PlannerHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comparison, err := h.service.CompareStrategies(req.Accounts, req.ExtraPayment)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, comparison)
}

// CompareStored runs the strategy comparison over the accounts currently in
// the persistence layer instead of a caller-supplied set.
func (h *PlannerHandler) CompareStored(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req compareStoredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	accounts, err := h.repo.ListActive()
	if err != nil {
		http.Error(w, "failed to load accounts", http.StatusInternalServerError)
		return
	}

	comparison, err := h.service.CompareStrategies(accounts, req.ExtraPayment)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, comparison)
}

func (h *PlannerHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entries, err := h.service.ProjectInterestCost(req.Accounts, req.HorizonMonths)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, entries)
}

func (h *PlannerHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	recommendations, err := h.service.OptimizeAllocation(req.Accounts, req.ExtraPayment)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, recommendations)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// writeEngineError maps engine errors to HTTP statuses. Inputs the caller can
// fix by rewriting the request are 400; inputs that are well-formed but
// mathematically unworkable (a payment that never amortizes, a simulation
// that never converges) are 422.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if service.IsPaymentInsufficient(err) || service.IsUnconverging(err) {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"kind":  string(service.KindOf(err)),
	})
}
