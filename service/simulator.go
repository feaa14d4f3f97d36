package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
)

// Options holds the tunable thresholds of the planning engine. Non-positive
// values select the corresponding default; an explicit zero threshold is not
// representable (use a small positive value instead).
type Options struct {
	// InterestThreshold is the interest saving (currency units) above which
	// the comparator recommends avalanche.
	InterestThreshold float64
	// TimeSavedThresholdMonths is the payoff-time saving above which the
	// comparator recommends avalanche.
	TimeSavedThresholdMonths int
	// MaxSimulationMonths caps the shared month clock; exceeding it fails
	// the simulation as unconverging.
	MaxSimulationMonths int
	// LegacyPooling makes a closed account's minimum join the extra pool the
	// month it closes instead of the month after. Off by default; exists for
	// backward-compatible totals with older plan exports.
	LegacyPooling bool
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		InterestThreshold:        DefaultInterestThreshold,
		TimeSavedThresholdMonths: DefaultTimeSavedThresholdMonths,
		MaxSimulationMonths:      DefaultMaxSimulationMonths,
	}
}

func (o Options) withDefaults() Options {
	if o.InterestThreshold <= 0 {
		o.InterestThreshold = DefaultInterestThreshold
	}
	if o.TimeSavedThresholdMonths <= 0 {
		o.TimeSavedThresholdMonths = DefaultTimeSavedThresholdMonths
	}
	if o.MaxSimulationMonths <= 0 {
		o.MaxSimulationMonths = DefaultMaxSimulationMonths
	}
	return o
}

// PlannerService runs payoff simulations, strategy comparisons, status-quo
// projections, and allocation recommendations. Every entry point is a pure
// function of its inputs; the cache is the only collaborator and losing it
// never changes a result.
type PlannerService struct {
	cache     repository.CacheRepository
	explainer *Explainer
	logger    *zap.Logger
	opts      Options
}

// NewPlannerService creates a PlannerService. cache may be nil (no caching);
// logger may be nil (no-op logger).
func NewPlannerService(cache repository.CacheRepository, logger *zap.Logger, opts Options) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		cache:     cache,
		explainer: NewExplainer(logger),
		logger:    logger,
		opts:      opts.withDefaults(),
	}
}

// Options returns the effective engine options.
func (s *PlannerService) Options() Options { return s.opts }

// accountState is the per-account working state of one simulation run, kept
// in strategy priority order.
type accountState struct {
	acct         domain.DebtAccount
	rate         float64
	balance      float64
	interestPaid float64
	payoffMonth  int
}

// Simulate runs the shared month-by-month clock across all accounts. Every
// open account accrues interest and pays its minimum each month; the pooled
// extra budget (caller-supplied extra plus the minimums of accounts closed in
// prior months) goes to the highest-priority open account, spilling to the
// next in priority order within the same month when it overshoots.
func (s *PlannerService) Simulate(accounts []domain.DebtAccount, strategy domain.Strategy, extraPayment float64) (domain.StrategyResult, error) {
	if !strategy.Valid() {
		return domain.StrategyResult{}, fmt.Errorf("unknown strategy %q", strategy)
	}
	if extraPayment < 0 {
		return domain.StrategyResult{}, errInvalidPayment("", "extra payment must not be negative")
	}
	active, err := validateAccounts(accounts)
	if err != nil {
		return domain.StrategyResult{}, err
	}

	ordered := orderByStrategy(active, strategy)
	states := make([]accountState, len(ordered))
	for i, a := range ordered {
		states[i] = accountState{acct: a, rate: a.MonthlyRate(), balance: a.Balance}
	}

	// Minimums of accounts closed in months before the current one.
	released := 0.0

	for month := 1; ; month++ {
		if month > s.opts.MaxSimulationMonths {
			return domain.StrategyResult{}, errUnconverging(s.opts.MaxSimulationMonths)
		}

		// 1) Accrue interest on every open balance.
		for i := range states {
			st := &states[i]
			if st.balance <= 0 {
				continue
			}
			interest := st.balance * st.rate
			st.balance += interest
			st.interestPaid += interest
		}

		// 2) Every open account pays its own minimum, capped at its balance.
		// When the balance is smaller than the minimum, the unused remainder
		// is still this month's money: it joins the extra pool below instead
		// of evaporating.
		closedThisMonth := 0.0
		minimumSurplus := 0.0
		for i := range states {
			st := &states[i]
			if st.balance <= 0 {
				continue
			}
			pay := st.acct.MinimumPayment
			if pay > st.balance {
				minimumSurplus += pay - st.balance
				pay = st.balance
			}
			st.balance -= pay
			if st.balance <= DebtBalanceTolerance {
				st.balance = 0
				st.payoffMonth = month
				closedThisMonth += st.acct.MinimumPayment
			}
		}

		// 3) The pooled extra goes to the highest-priority open account.
		extra := extraPayment + released + minimumSurplus
		if s.opts.LegacyPooling {
			// The legacy pool re-credits a closing account's full minimum in
			// the same month, which already includes its unused remainder.
			extra = extraPayment + released + closedThisMonth
		}
		for i := range states {
			if extra <= 0 {
				break
			}
			st := &states[i]
			if st.balance <= 0 {
				continue
			}
			pay := extra
			if pay > st.balance {
				pay = st.balance
			}
			st.balance -= pay
			extra -= pay
			if st.balance <= DebtBalanceTolerance {
				st.balance = 0
				st.payoffMonth = month
				closedThisMonth += st.acct.MinimumPayment
				if s.opts.LegacyPooling {
					extra += st.acct.MinimumPayment
				}
			}
		}

		// Closed minimums cascade from next month on.
		released += closedThisMonth

		allClosed := true
		for i := range states {
			if states[i].balance > 0 {
				allClosed = false
				break
			}
		}
		if allClosed {
			return buildResult(strategy, states), nil
		}
	}
}

func buildResult(strategy domain.Strategy, states []accountState) domain.StrategyResult {
	result := domain.StrategyResult{
		StrategyName: strategy,
		Entries:      make([]domain.PayoffPlanEntry, len(states)),
	}
	total := 0.0
	for i, st := range states {
		result.Entries[i] = domain.PayoffPlanEntry{
			AccountID:         st.acct.ID,
			Order:             i + 1,
			PayoffMonth:       st.payoffMonth,
			TotalInterestPaid: roundTo2Decimals(st.interestPaid),
		}
		total += st.interestPaid
		if st.payoffMonth > result.OverallPayoffMonth {
			result.OverallPayoffMonth = st.payoffMonth
		}
	}
	result.TotalInterestPaid = roundTo2Decimals(total)
	return result
}

// validateAccounts checks input limits and returns the accounts that still
// carry a balance. Zero-balance accounts are already paid off and excluded.
func validateAccounts(accounts []domain.DebtAccount) ([]domain.DebtAccount, error) {
	if len(accounts) == 0 {
		return nil, errNoDebtAccounts()
	}
	if len(accounts) > MaxAccountsPerRequest {
		return nil, fmt.Errorf("number of accounts exceeds the maximum of %d", MaxAccountsPerRequest)
	}

	seen := make(map[string]bool, len(accounts))
	active := make([]domain.DebtAccount, 0, len(accounts))
	for _, a := range accounts {
		if a.ID == "" {
			return nil, fmt.Errorf("account id must not be empty")
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate account id: %s", a.ID)
		}
		seen[a.ID] = true

		if a.Balance < 0 {
			return nil, fmt.Errorf("account %s: balance must not be negative", a.ID)
		}
		if a.Balance > MaxAccountBalance {
			return nil, fmt.Errorf("account %s: balance exceeds the maximum of %.2f", a.ID, float64(MaxAccountBalance))
		}
		if a.AnnualInterestRate < 0 {
			return nil, fmt.Errorf("account %s: interest rate must not be negative", a.ID)
		}
		if a.AnnualInterestRate > MaxAnnualInterestRate {
			return nil, fmt.Errorf("account %s: interest rate exceeds the maximum of %.2f%%", a.ID, float64(MaxAnnualInterestRate))
		}
		if a.Balance == 0 {
			continue
		}
		if a.MinimumPayment <= 0 {
			return nil, errInvalidPayment(a.ID, "minimum payment must be positive for an account with a balance")
		}
		active = append(active, a)
	}
	if len(active) == 0 {
		return nil, errNoDebtAccounts()
	}
	return active, nil
}

// orderByStrategy returns a copy of accounts sorted into the strategy's
// priority order. Ties break deterministically: snowball by id; avalanche by
// ascending balance, then id.
func orderByStrategy(accounts []domain.DebtAccount, strategy domain.Strategy) []domain.DebtAccount {
	ordered := make([]domain.DebtAccount, len(accounts))
	copy(ordered, accounts)

	switch strategy {
	case domain.Snowball:
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].Balance != ordered[j].Balance {
				return ordered[i].Balance < ordered[j].Balance
			}
			return ordered[i].ID < ordered[j].ID
		})
	case domain.Avalanche:
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].AnnualInterestRate != ordered[j].AnnualInterestRate {
				return ordered[i].AnnualInterestRate > ordered[j].AnnualInterestRate
			}
			if ordered[i].Balance != ordered[j].Balance {
				return ordered[i].Balance < ordered[j].Balance
			}
			return ordered[i].ID < ordered[j].ID
		})
	}
	return ordered
}
