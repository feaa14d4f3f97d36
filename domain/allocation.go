package domain

// AllocationRationale tags why an account received its recommended payment.
type AllocationRationale string

const (
	// RationaleHighestRate marks the single account chosen to absorb the
	// extra-payment budget (mathematically optimal for a one-shot allocation).
	RationaleHighestRate AllocationRationale = "highest_rate_target"
	// RationaleMinimumOnly marks accounts that keep paying their own minimum.
	RationaleMinimumOnly AllocationRationale = "minimum_only"
)

// AllocationRecommendation is the suggested monthly payment for one account
// given a fixed extra-payment budget. The impact fields compare this account
// in isolation at its minimum payment versus the recommended payment; they do
// not model cross-account cascading.
type AllocationRecommendation struct {
	AccountID          string              `json:"account_id"`
	RecommendedPayment float64             `json:"recommended_payment"`
	ExtraPortion       float64             `json:"extra_portion"`
	Rationale          AllocationRationale `json:"rationale"`
	ImpactOnPayoffTime int                 `json:"impact_on_payoff_time_months"` // months saved
	ImpactOnInterest   float64             `json:"impact_on_interest"`           // interest saved
}
