package service

import (
	"iter"
	"math"

	"debt-planner/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthsToPayoff returns the number of whole months needed to amortize
// balance at annualRatePct with a fixed monthlyPayment.
//
// A non-positive balance needs 0 months. A zero rate amortizes linearly. For
// a positive rate the closed-form annuity formula applies, rounded up and
// floored at one month. The insufficiency check happens before the logarithm
// is taken; NaN propagation is never relied on.
func MonthsToPayoff(balance, monthlyPayment, annualRatePct float64) (int, error) {
	if balance <= 0 {
		return 0, nil
	}
	if monthlyPayment <= 0 {
		return 0, errInvalidPayment("", "monthly payment must be positive")
	}

	r := annualRatePct / 12 / 100
	if r == 0 {
		return int(math.Ceil(balance / monthlyPayment)), nil
	}
	if monthlyPayment <= balance*r {
		return 0, errPaymentInsufficient("", monthlyPayment, balance*r)
	}

	months := -math.Log(1-balance*r/monthlyPayment) / math.Log(1+r)
	n := int(math.Ceil(months))
	if n < 1 {
		n = 1
	}
	return n, nil
}

// TotalInterest returns the total interest paid over the life of the loan
// under a fixed monthlyPayment. A zero rate pays zero interest exactly; the
// final partial payment is not charged as a full month.
func TotalInterest(balance, monthlyPayment, annualRatePct float64) (float64, error) {
	months, err := MonthsToPayoff(balance, monthlyPayment, annualRatePct)
	if err != nil {
		return 0, err
	}
	if annualRatePct == 0 {
		return 0, nil
	}
	interest := monthlyPayment*float64(months) - balance
	if interest < 0 {
		interest = 0
	}
	return interest, nil
}

// AmortizationSchedule returns the month-by-month projection of a single
// account under a fixed payment. The sequence is stateless and restartable:
// every range starts over from the initial balance.
//
// The sequence ends the month the balance reaches zero. When the payment does
// not cover accruing interest the balance grows and the sequence never ends
// on its own — callers that have not validated the payment with
// MonthsToPayoff must bound their iteration (the status-quo projection
// truncates at its horizon).
func AmortizationSchedule(balance, monthlyPayment, annualRatePct float64) iter.Seq[domain.ScheduleEntry] {
	return func(yield func(domain.ScheduleEntry) bool) {
		r := annualRatePct / 12 / 100
		bal := balance
		for month := 1; bal > DebtBalanceTolerance; month++ {
			interest := bal * r
			principal := monthlyPayment - interest
			if principal > bal {
				principal = bal
			}
			bal -= principal
			if bal <= DebtBalanceTolerance {
				bal = 0
			}
			entry := domain.ScheduleEntry{
				Month:            month,
				InterestPortion:  interest,
				PrincipalPortion: principal,
				EndingBalance:    bal,
			}
			if !yield(entry) {
				return
			}
		}
	}
}
