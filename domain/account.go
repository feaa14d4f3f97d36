package domain

// DebtAccount is one debt-bearing account (credit line, loan) as supplied by
// the persistence layer. Balance is a non-negative magnitude: the sign of the
// debt is normalized away before the account reaches the planning engine.
type DebtAccount struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Balance            float64 `json:"balance"`
	AnnualInterestRate float64 `json:"annual_interest_rate"` // percent per year, e.g. 18.99
	MinimumPayment     float64 `json:"minimum_payment"`      // required monthly payment
}

// MonthlyRate converts the annual percentage rate to a monthly decimal rate.
func (a DebtAccount) MonthlyRate() float64 {
	return a.AnnualInterestRate / 12 / 100
}
