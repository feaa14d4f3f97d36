package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/domain"
)

func TestAccountRepositoryMemory_SaveAssignsID(t *testing.T) {
	repo := NewAccountRepositoryMemory()

	account := domain.DebtAccount{Name: "Card", Balance: 500, AnnualInterestRate: 18, MinimumPayment: 25}
	require.NoError(t, repo.Save(&account))
	assert.NotEmpty(t, account.ID)
}

func TestAccountRepositoryMemory_ListActiveFiltersPaidOff(t *testing.T) {
	repo := NewAccountRepositoryMemory()

	open := domain.DebtAccount{ID: "open", Balance: 500, AnnualInterestRate: 18, MinimumPayment: 25}
	paid := domain.DebtAccount{ID: "paid", Balance: 0, AnnualInterestRate: 18, MinimumPayment: 25}
	require.NoError(t, repo.Save(&open))
	require.NoError(t, repo.Save(&paid))

	accounts, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "open", accounts[0].ID)
}

func TestAccountRepositoryMemory_SaveUpdatesExisting(t *testing.T) {
	repo := NewAccountRepositoryMemory()

	account := domain.DebtAccount{ID: "a", Balance: 500, AnnualInterestRate: 18, MinimumPayment: 25}
	require.NoError(t, repo.Save(&account))

	account.Balance = 250
	require.NoError(t, repo.Save(&account))

	accounts, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, 250.0, accounts[0].Balance)
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v"))
	val, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, cache.Len())
}
