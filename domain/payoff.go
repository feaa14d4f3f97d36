package domain

// Strategy identifies a repayment ordering.
type Strategy string

const (
	// Snowball pays the smallest balance first.
	Snowball Strategy = "snowball"
	// Avalanche pays the highest interest rate first.
	Avalanche Strategy = "avalanche"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == Snowball || s == Avalanche
}

// PayoffPlanEntry is the simulated outcome for a single account under one
// strategy. Order is the 1-based priority rank; PayoffMonth is the 1-based
// month on which the balance reaches zero. PayoffMonth is not necessarily
// monotonic in Order: an account that starts later may still finish earlier
// than one paid minimums-only.
type PayoffPlanEntry struct {
	AccountID         string  `json:"account_id"`
	Order             int     `json:"order"`
	PayoffMonth       int     `json:"payoff_month"`
	TotalInterestPaid float64 `json:"total_interest_paid"`
}

// StrategyResult is the full payoff plan produced by one simulation run.
type StrategyResult struct {
	StrategyName       Strategy          `json:"strategy"`
	TotalInterestPaid  float64           `json:"total_interest_paid"`
	OverallPayoffMonth int               `json:"overall_payoff_month"`
	Entries            []PayoffPlanEntry `json:"entries"`
}

// StrategyComparison holds both simulated plans plus the recommendation
// derived from the configured interest and time thresholds.
type StrategyComparison struct {
	Snowball        StrategyResult `json:"snowball"`
	Avalanche       StrategyResult `json:"avalanche"`
	Recommendation  Strategy       `json:"recommendation"`
	InterestSaved   float64        `json:"interest_saved"`
	TimeSavedMonths int            `json:"time_saved_months"`
	Explanation     string         `json:"explanation,omitempty"`
}
