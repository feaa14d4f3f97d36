package service

import (
	"errors"
	"fmt"
	"sort"

	"debt-planner/domain"
)

// ProjectInterestCost projects the current minimum-payments-only schedule of
// every account over horizonMonths. Each account is projected independently —
// this is the status-quo view, deliberately without the cross-account
// cascading the simulator applies. An account's projection stops early if it
// amortizes before the horizon.
func (s *PlannerService) ProjectInterestCost(accounts []domain.DebtAccount, horizonMonths int) ([]domain.ProjectionEntry, error) {
	if horizonMonths <= 0 {
		return nil, fmt.Errorf("horizon must be at least one month")
	}
	active, err := validateAccounts(accounts)
	if err != nil {
		return nil, err
	}

	var entries []domain.ProjectionEntry
	for _, a := range active {
		cumulative := 0.0
		for step := range AmortizationSchedule(a.Balance, a.MinimumPayment, a.AnnualInterestRate) {
			if step.Month > horizonMonths {
				break
			}
			cumulative += step.InterestPortion
			entries = append(entries, domain.ProjectionEntry{
				AccountID:          a.ID,
				Month:              step.Month,
				Balance:            roundTo2Decimals(step.EndingBalance),
				InterestPaid:       roundTo2Decimals(step.InterestPortion),
				PrincipalPaid:      roundTo2Decimals(step.PrincipalPortion),
				CumulativeInterest: roundTo2Decimals(cumulative),
			})
		}
	}
	return entries, nil
}

// OptimizeAllocation recommends how to split a fixed extra-payment budget for
// next month: the highest-rate account absorbs the whole budget on top of its
// minimum, every other account keeps its own minimum. The per-account impact
// numbers compare that account in isolation at its minimum versus its
// recommended payment; they do not run the cascading simulation.
func (s *PlannerService) OptimizeAllocation(accounts []domain.DebtAccount, extraPayment float64) ([]domain.AllocationRecommendation, error) {
	if extraPayment < 0 {
		return nil, errInvalidPayment("", "extra payment must not be negative")
	}
	active, err := validateAccounts(accounts)
	if err != nil {
		return nil, err
	}

	// Avalanche priority: the mathematically-optimal target for a one-shot
	// "where does next month's extra dollar go" decision.
	sort.Slice(active, func(i, j int) bool {
		if active[i].AnnualInterestRate != active[j].AnnualInterestRate {
			return active[i].AnnualInterestRate > active[j].AnnualInterestRate
		}
		if active[i].Balance != active[j].Balance {
			return active[i].Balance < active[j].Balance
		}
		return active[i].ID < active[j].ID
	})

	recommendations := make([]domain.AllocationRecommendation, 0, len(active))
	for i, a := range active {
		rec := domain.AllocationRecommendation{
			AccountID:          a.ID,
			RecommendedPayment: roundTo2Decimals(a.MinimumPayment),
			Rationale:          domain.RationaleMinimumOnly,
		}
		if i == 0 {
			rec.RecommendedPayment = roundTo2Decimals(a.MinimumPayment + extraPayment)
			rec.ExtraPortion = roundTo2Decimals(extraPayment)
			rec.Rationale = domain.RationaleHighestRate
		}

		if err := fillImpact(&rec, a); err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations, nil
}

// fillImpact computes months and interest saved by paying the recommended
// payment instead of the minimum. Failures are never clamped: an account
// whose minimum cannot amortize its balance propagates PAYMENT_INSUFFICIENT
// tagged with its id so the caller knows which input to fix.
func fillImpact(rec *domain.AllocationRecommendation, a domain.DebtAccount) error {
	baseMonths, err := MonthsToPayoff(a.Balance, a.MinimumPayment, a.AnnualInterestRate)
	if err != nil {
		return tagAccount(err, a.ID)
	}
	baseInterest, err := TotalInterest(a.Balance, a.MinimumPayment, a.AnnualInterestRate)
	if err != nil {
		return tagAccount(err, a.ID)
	}
	recMonths, err := MonthsToPayoff(a.Balance, rec.RecommendedPayment, a.AnnualInterestRate)
	if err != nil {
		return tagAccount(err, a.ID)
	}
	recInterest, err := TotalInterest(a.Balance, rec.RecommendedPayment, a.AnnualInterestRate)
	if err != nil {
		return tagAccount(err, a.ID)
	}

	rec.ImpactOnPayoffTime = baseMonths - recMonths
	rec.ImpactOnInterest = roundTo2Decimals(baseInterest - recInterest)
	return nil
}

func tagAccount(err error, accountID string) error {
	var ee *EngineError
	if errors.As(err, &ee) && ee.AccountID == "" {
		return &EngineError{Kind: ee.Kind, Message: ee.Message, AccountID: accountID}
	}
	return err
}
