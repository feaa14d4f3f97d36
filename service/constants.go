package service

const (
	MaxAccountBalance     = 100_000_000.0 // per-account balance ceiling
	MaxAnnualInterestRate = 1000.0        // percent per year
	MaxAccountsPerRequest = 50

	DefaultMaxSimulationMonths      = 1200 // 100 years
	DefaultInterestThreshold        = 1000.0
	DefaultTimeSavedThresholdMonths = 6

	DebtBalanceTolerance = 0.01 // balances at or below this count as paid off
)
