package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsToPayoff_ZeroBalance(t *testing.T) {
	months, err := MonthsToPayoff(0, 100, 12)
	require.NoError(t, err)
	assert.Equal(t, 0, months)
}

func TestMonthsToPayoff_InvalidPayment(t *testing.T) {
	_, err := MonthsToPayoff(1000, 0, 12)
	require.Error(t, err)
	assert.True(t, IsInvalidPayment(err))
	assert.Equal(t, KindInvalidPayment, KindOf(err))
}

func TestMonthsToPayoff_PaymentInsufficient(t *testing.T) {
	// 1000 at 24% accrues 20/month; a 10 payment never amortizes.
	_, err := MonthsToPayoff(1000, 10, 24)
	require.Error(t, err)
	assert.True(t, IsPaymentInsufficient(err))
}

func TestMonthsToPayoff_ZeroRate(t *testing.T) {
	months, err := MonthsToPayoff(1200, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, months)

	// Partial final payment still rounds up to a whole month.
	months, err = MonthsToPayoff(1250, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 13, months)
}

func TestMonthsToPayoff_ClosedForm(t *testing.T) {
	// 1000 at 12% (1%/month) with 100/month: 10.59 -> 11 months.
	months, err := MonthsToPayoff(1000, 100, 12)
	require.NoError(t, err)
	assert.Equal(t, 11, months)
}

func TestMonthsToPayoff_PaymentMonotonicity(t *testing.T) {
	prev := int(1 << 30)
	for _, payment := range []float64{50, 75, 100, 200, 500} {
		months, err := MonthsToPayoff(2000, payment, 18)
		require.NoError(t, err)
		assert.LessOrEqual(t, months, prev, "payment %.0f", payment)
		prev = months
	}
}

func TestTotalInterest_ZeroRateIsExactlyZero(t *testing.T) {
	// 1000/300 rounds up to 4 months of payments, but with no rate there is
	// no interest, full stop.
	interest, err := TotalInterest(1000, 300, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, interest)
}

func TestTotalInterest_PositiveRate(t *testing.T) {
	interest, err := TotalInterest(1000, 100, 12)
	require.NoError(t, err)
	// 11 payments of 100 against a 1000 balance.
	assert.InDelta(t, 100, interest, 0.001)
}

func TestTotalInterest_PropagatesInsufficiency(t *testing.T) {
	_, err := TotalInterest(1000, 10, 24)
	assert.True(t, IsPaymentInsufficient(err))
}

func TestAmortizationSchedule_Restartable(t *testing.T) {
	seq := AmortizationSchedule(1000, 100, 12)

	var first, second []float64
	for entry := range seq {
		first = append(first, entry.EndingBalance)
	}
	for entry := range seq {
		second = append(second, entry.EndingBalance)
	}
	assert.Equal(t, first, second)
}

func TestAmortizationSchedule_PrincipalSumsToBalance(t *testing.T) {
	months, err := MonthsToPayoff(1000, 100, 12)
	require.NoError(t, err)

	var count int
	var principal float64
	for entry := range AmortizationSchedule(1000, 100, 12) {
		count++
		principal += entry.PrincipalPortion
		assert.Equal(t, count, entry.Month)
	}
	assert.Equal(t, months, count)
	assert.InDelta(t, 1000, principal, DebtBalanceTolerance*2)
}

func TestAmortizationSchedule_UnderwaterBalanceGrows(t *testing.T) {
	var last float64
	count := 0
	for entry := range AmortizationSchedule(10000, 150, 24) {
		last = entry.EndingBalance
		count++
		if count == 6 {
			break
		}
	}
	assert.Greater(t, last, 10000.0)
}
