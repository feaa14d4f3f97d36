package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/domain"
)

func TestProjectInterestCost_HorizonTruncates(t *testing.T) {
	s := newTestPlanner(t, Options{})
	accounts := []domain.DebtAccount{
		{ID: "a", Balance: 5000, AnnualInterestRate: 18, MinimumPayment: 150},
	}

	entries, err := s.ProjectInterestCost(accounts, 12)
	require.NoError(t, err)
	require.Len(t, entries, 12)

	prevCumulative := 0.0
	prevBalance := 5000.0
	for i, e := range entries {
		assert.Equal(t, "a", e.AccountID)
		assert.Equal(t, i+1, e.Month)
		assert.Greater(t, e.CumulativeInterest, prevCumulative)
		assert.Less(t, e.Balance, prevBalance)
		prevCumulative = e.CumulativeInterest
		prevBalance = e.Balance
	}
}

func TestProjectInterestCost_PayoffBeforeHorizon(t *testing.T) {
	s := newTestPlanner(t, Options{})
	accounts := []domain.DebtAccount{
		{ID: "a", Balance: 100, AnnualInterestRate: 0, MinimumPayment: 60},
	}

	entries, err := s.ProjectInterestCost(accounts, 12)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 0.0, entries[1].Balance)
	assert.Equal(t, 0.0, entries[1].CumulativeInterest)
}

func TestProjectInterestCost_UnderwaterAccount(t *testing.T) {
	s := newTestPlanner(t, Options{})

	// The minimum does not cover accruing interest; the projection still
	// works and shows the balance climbing.
	accounts := []domain.DebtAccount{
		{ID: "a", Balance: 10000, AnnualInterestRate: 24, MinimumPayment: 150},
	}

	entries, err := s.ProjectInterestCost(accounts, 6)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Greater(t, entries[5].Balance, 10000.0)
}

func TestProjectInterestCost_InvalidHorizon(t *testing.T) {
	s := newTestPlanner(t, Options{})
	_, err := s.ProjectInterestCost(twoAccounts(), 0)
	assert.Error(t, err)
}

func TestProjectInterestCost_MultipleAccountsIndependent(t *testing.T) {
	s := newTestPlanner(t, Options{})

	entries, err := s.ProjectInterestCost(twoAccounts(), 6)
	require.NoError(t, err)

	byAccount := map[string]int{}
	for _, e := range entries {
		byAccount[e.AccountID]++
	}
	assert.Equal(t, 6, byAccount["a"])
	assert.Equal(t, 6, byAccount["b"])
}

func TestOptimizeAllocation_TargetsHighestRate(t *testing.T) {
	s := newTestPlanner(t, Options{})
	accounts := []domain.DebtAccount{
		{ID: "low", Balance: 4000, AnnualInterestRate: 12, MinimumPayment: 120},
		{ID: "high", Balance: 2000, AnnualInterestRate: 25, MinimumPayment: 60},
	}

	recs, err := s.OptimizeAllocation(accounts, 300)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	target := recs[0]
	assert.Equal(t, "high", target.AccountID)
	assert.Equal(t, 360.0, target.RecommendedPayment)
	assert.Equal(t, 300.0, target.ExtraPortion)
	assert.Equal(t, domain.RationaleHighestRate, target.Rationale)
	assert.Greater(t, target.ImpactOnPayoffTime, 0)
	assert.Greater(t, target.ImpactOnInterest, 0.0)

	rest := recs[1]
	assert.Equal(t, "low", rest.AccountID)
	assert.Equal(t, 120.0, rest.RecommendedPayment)
	assert.Equal(t, 0.0, rest.ExtraPortion)
	assert.Equal(t, domain.RationaleMinimumOnly, rest.Rationale)
	assert.Equal(t, 0, rest.ImpactOnPayoffTime)
	assert.Equal(t, 0.0, rest.ImpactOnInterest)
}

func TestOptimizeAllocation_ZeroExtraStillRanks(t *testing.T) {
	s := newTestPlanner(t, Options{})

	recs, err := s.OptimizeAllocation(twoAccounts(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].AccountID) // 20% beats 10%
	assert.Equal(t, domain.RationaleHighestRate, recs[0].Rationale)
	assert.Equal(t, 0.0, recs[0].ExtraPortion)
}

func TestOptimizeAllocation_NegativeExtra(t *testing.T) {
	s := newTestPlanner(t, Options{})
	_, err := s.OptimizeAllocation(twoAccounts(), -10)
	assert.True(t, IsInvalidPayment(err))
}

func TestOptimizeAllocation_InsufficientMinimumNamesAccount(t *testing.T) {
	s := newTestPlanner(t, Options{})
	accounts := []domain.DebtAccount{
		{ID: "ok", Balance: 1000, AnnualInterestRate: 10, MinimumPayment: 100},
		{ID: "stuck", Balance: 10000, AnnualInterestRate: 24, MinimumPayment: 150},
	}

	_, err := s.OptimizeAllocation(accounts, 50)
	require.Error(t, err)
	require.True(t, IsPaymentInsufficient(err))

	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "stuck", ee.AccountID)
}

func TestOptimizeAllocation_NoAccounts(t *testing.T) {
	s := newTestPlanner(t, Options{})
	_, err := s.OptimizeAllocation(nil, 100)
	assert.True(t, IsNoDebtAccounts(err))
}
