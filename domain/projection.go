package domain

// ScheduleEntry is one month of a single-account amortization schedule.
type ScheduleEntry struct {
	Month            int     `json:"month"`
	InterestPortion  float64 `json:"interest_portion"`
	PrincipalPortion float64 `json:"principal_portion"`
	EndingBalance    float64 `json:"ending_balance"`
}

// ProjectionEntry is one month of the status-quo projection for one account:
// minimum payments only, no cross-account cascading.
type ProjectionEntry struct {
	AccountID          string  `json:"account_id"`
	Month              int     `json:"month"`
	Balance            float64 `json:"balance"`
	InterestPaid       float64 `json:"interest_paid"`
	PrincipalPaid      float64 `json:"principal_paid"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}
