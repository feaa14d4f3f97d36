package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"debt-planner/domain"
)

// AccountRepositoryPostgres stores accounts in Postgres.
type AccountRepositoryPostgres struct {
	db *sql.DB
}

// NewAccountRepositoryPostgres opens a connection with the given DSN, pings
// it, and runs the schema migration.
func NewAccountRepositoryPostgres(dsn string) (*AccountRepositoryPostgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	repo := &AccountRepositoryPostgres{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return repo, nil
}

func (r *AccountRepositoryPostgres) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS debt_accounts (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  balance DOUBLE PRECISION NOT NULL CHECK (balance >= 0),
  annual_interest_rate DOUBLE PRECISION NOT NULL CHECK (annual_interest_rate >= 0),
  minimum_payment DOUBLE PRECISION NOT NULL CHECK (minimum_payment >= 0)
);
`
	_, err := r.db.Exec(schema)
	return err
}

func (r *AccountRepositoryPostgres) ListActive() ([]domain.DebtAccount, error) {
	rows, err := r.db.Query(`
SELECT id, name, balance, annual_interest_rate, minimum_payment
FROM debt_accounts
WHERE balance > 0
ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DebtAccount
	for rows.Next() {
		var a domain.DebtAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance, &a.AnnualInterestRate, &a.MinimumPayment); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AccountRepositoryPostgres) Save(account *domain.DebtAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
INSERT INTO debt_accounts(id, name, balance, annual_interest_rate, minimum_payment)
VALUES($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    balance = EXCLUDED.balance,
    annual_interest_rate = EXCLUDED.annual_interest_rate,
    minimum_payment = EXCLUDED.minimum_payment`,
		account.ID, account.Name, account.Balance, account.AnnualInterestRate, account.MinimumPayment)
	return err
}

// Close releases the underlying connection pool.
func (r *AccountRepositoryPostgres) Close() error {
	return r.db.Close()
}
