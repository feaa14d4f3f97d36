package service

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes engine failures so callers can present an actionable
// message instead of a generic one. All kinds are detected synchronously at
// the point of computation; none is transient and none is fatal. Adjusting
// the inputs and recomputing is always a valid recovery.
type ErrorKind string

const (
	// KindInvalidPayment: a supplied payment is <= 0 where a positive
	// payment is required.
	KindInvalidPayment ErrorKind = "INVALID_PAYMENT"
	// KindPaymentInsufficient: a payment does not exceed the interest
	// accruing on a balance, so that account can never amortize.
	KindPaymentInsufficient ErrorKind = "PAYMENT_INSUFFICIENT"
	// KindUnconverging: the multi-account simulation exceeded the month cap
	// without every account reaching zero balance.
	KindUnconverging ErrorKind = "UNCONVERGING"
	// KindNoDebtAccounts: an operation requiring at least one account was
	// called with an empty set.
	KindNoDebtAccounts ErrorKind = "NO_DEBT_ACCOUNTS"
)

// EngineError is a categorized engine failure. AccountID is set when the
// failure is attributable to a single account's inputs.
type EngineError struct {
	Kind      ErrorKind
	Message   string
	AccountID string
}

func (e *EngineError) Error() string {
	if e.AccountID != "" {
		return fmt.Sprintf("%s: %s (account=%s)", e.Kind, e.Message, e.AccountID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf returns the ErrorKind of err, or "" if err is not an EngineError.
func KindOf(err error) ErrorKind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

// IsInvalidPayment reports whether err is an INVALID_PAYMENT engine error.
func IsInvalidPayment(err error) bool { return KindOf(err) == KindInvalidPayment }

// IsPaymentInsufficient reports whether err is a PAYMENT_INSUFFICIENT engine error.
func IsPaymentInsufficient(err error) bool { return KindOf(err) == KindPaymentInsufficient }

// IsUnconverging reports whether err is an UNCONVERGING engine error.
func IsUnconverging(err error) bool { return KindOf(err) == KindUnconverging }

// IsNoDebtAccounts reports whether err is a NO_DEBT_ACCOUNTS engine error.
func IsNoDebtAccounts(err error) bool { return KindOf(err) == KindNoDebtAccounts }

func errInvalidPayment(accountID, msg string) error {
	return &EngineError{Kind: KindInvalidPayment, Message: msg, AccountID: accountID}
}

func errPaymentInsufficient(accountID string, payment, monthlyInterest float64) error {
	return &EngineError{
		Kind:      KindPaymentInsufficient,
		Message:   fmt.Sprintf("payment %.2f does not cover monthly interest %.2f", payment, monthlyInterest),
		AccountID: accountID,
	}
}

func errUnconverging(maxMonths int) error {
	return &EngineError{
		Kind:    KindUnconverging,
		Message: fmt.Sprintf("simulation exceeded %d months with open balances", maxMonths),
	}
}

func errNoDebtAccounts() error {
	return &EngineError{Kind: KindNoDebtAccounts, Message: "no debt accounts with a positive balance"}
}
