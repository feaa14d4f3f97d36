package repository

import "debt-planner/domain"

type AccountRepository interface {
	// ListActive returns every stored account that still carries a balance.
	ListActive() ([]domain.DebtAccount, error)
	// Save inserts the account, or updates it when the id already exists. An
	// empty id is assigned one.
	Save(account *domain.DebtAccount) error
}
