package repository

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"debt-planner/domain"
)

// AccountRepositoryMemory is an in-memory implementation of AccountRepository.
type AccountRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.DebtAccount
}

// NewAccountRepositoryMemory creates a new in-memory account repository.
func NewAccountRepositoryMemory() *AccountRepositoryMemory {
	return &AccountRepositoryMemory{
		data: make(map[string]domain.DebtAccount),
	}
}

// ListActive returns the stored accounts with a positive balance, ordered by
// id for stable output.
func (r *AccountRepositoryMemory) ListActive() ([]domain.DebtAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.DebtAccount, 0, len(r.data))
	for _, a := range r.data {
		if a.Balance > 0 {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// Save stores the account, assigning an id when it has none.
func (r *AccountRepositoryMemory) Save(account *domain.DebtAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	r.data[account.ID] = *account
	return nil
}
