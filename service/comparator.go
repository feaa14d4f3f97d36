package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"debt-planner/domain"
)

// CompareStrategies simulates both repayment orderings over the same account
// set and budget, then recommends one. Avalanche is recommended only when it
// beats snowball by more than the configured interest or time thresholds;
// otherwise the psychologically-motivating snowball ordering wins.
//
// Results are cached by a hash of the inputs. Cache failures are logged and
// ignored — the comparison is pure arithmetic and is simply recomputed.
func (s *PlannerService) CompareStrategies(accounts []domain.DebtAccount, extraPayment float64) (domain.StrategyComparison, error) {
	key := s.comparisonCacheKey(accounts, extraPayment)
	if s.cache != nil && key != "" {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.StrategyComparison
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.logger.Warn("discarding undecodable cached comparison", zap.String("key", key))
		}
	}

	snowball, err := s.Simulate(accounts, domain.Snowball, extraPayment)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	avalanche, err := s.Simulate(accounts, domain.Avalanche, extraPayment)
	if err != nil {
		return domain.StrategyComparison{}, err
	}

	comparison := domain.StrategyComparison{
		Snowball:        snowball,
		Avalanche:       avalanche,
		InterestSaved:   roundTo2Decimals(snowball.TotalInterestPaid - avalanche.TotalInterestPaid),
		TimeSavedMonths: snowball.OverallPayoffMonth - avalanche.OverallPayoffMonth,
	}

	comparison.Recommendation = domain.Snowball
	if comparison.InterestSaved > s.opts.InterestThreshold ||
		comparison.TimeSavedMonths > s.opts.TimeSavedThresholdMonths {
		comparison.Recommendation = domain.Avalanche
	}

	comparison.Explanation = s.explainer.ExplainComparison(comparison, accounts)

	if s.cache != nil && key != "" {
		encoded, err := json.Marshal(comparison)
		if err == nil {
			err = s.cache.Set(key, string(encoded))
		}
		if err != nil {
			s.logger.Warn("failed to cache comparison", zap.String("key", key), zap.Error(err))
		}
	}

	return comparison, nil
}

// comparisonCacheKey hashes the full comparison input, including the
// thresholds, so a config change never serves a stale recommendation.
func (s *PlannerService) comparisonCacheKey(accounts []domain.DebtAccount, extraPayment float64) string {
	payload, err := json.Marshal(struct {
		Accounts     []domain.DebtAccount `json:"accounts"`
		ExtraPayment float64              `json:"extra_payment"`
		Options      Options              `json:"options"`
	}{accounts, extraPayment, s.opts})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("compare:%s", hex.EncodeToString(sum[:]))
}
