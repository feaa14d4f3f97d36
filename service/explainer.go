package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"debt-planner/domain"
)

// Explainer turns engine results into a short human-readable explanation for
// the presentation layer. When OPENAI_API_KEY is set it asks an LLM for the
// wording; otherwise it falls back to deterministic template text. The
// explanation is presentation only and is never an input to any computation.
type Explainer struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// NewExplainer creates an Explainer. The LLM path is enabled only when
// OPENAI_API_KEY is present in the environment.
func NewExplainer(logger *zap.Logger) *Explainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	return &Explainer{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ExplainComparison describes a snowball/avalanche comparison result.
func (e *Explainer) ExplainComparison(cmp domain.StrategyComparison, accounts []domain.DebtAccount) string {
	if !e.enabled {
		return e.fallbackComparison(cmp)
	}

	prompt := fmt.Sprintf(`Analyze this debt payoff comparison and write a clear, motivating explanation.

RECOMMENDED STRATEGY: %s

COMPARISON:
- Snowball (smallest balance first): $%.2f interest, debt-free in %d months
- Avalanche (highest rate first): $%.2f interest, debt-free in %d months
- Avalanche saves $%.2f and %d months over snowball

ACCOUNTS:
%s
INSTRUCTIONS:
1. Explain briefly how the recommended strategy works.
2. Be specific with the amounts and timelines above.
3. If the savings are small, explain why the quick wins of snowball can be worth more than the difference.
4. Keep it to 3-4 sentences, plain language, no financial jargon.`,
		cmp.Recommendation,
		cmp.Snowball.TotalInterestPaid, cmp.Snowball.OverallPayoffMonth,
		cmp.Avalanche.TotalInterestPaid, cmp.Avalanche.OverallPayoffMonth,
		cmp.InterestSaved, cmp.TimeSavedMonths,
		e.formatAccounts(accounts))

	explanation, err := e.callLLM(prompt)
	if err != nil {
		e.logger.Warn("comparison explanation request failed", zap.Error(err))
		return e.fallbackComparison(cmp)
	}
	return explanation
}

// ExplainAllocation describes an extra-payment allocation.
func (e *Explainer) ExplainAllocation(recs []domain.AllocationRecommendation, extraPayment float64) string {
	if len(recs) == 0 {
		return ""
	}
	target := recs[0]
	if !e.enabled {
		return e.fallbackAllocation(target, extraPayment)
	}

	prompt := fmt.Sprintf(`A user has $%.2f of extra monthly budget for debt payments. The recommendation is to put all of it toward account %s (on top of its $%.2f minimum), because it carries the highest interest rate. That single change saves the user $%.2f in interest and %d months on that account.

Write a 2-3 sentence plain-language explanation of why concentrating the extra payment on the highest-rate account beats spreading it around.`,
		extraPayment, target.AccountID, target.RecommendedPayment-target.ExtraPortion,
		target.ImpactOnInterest, target.ImpactOnPayoffTime)

	explanation, err := e.callLLM(prompt)
	if err != nil {
		e.logger.Warn("allocation explanation request failed", zap.Error(err))
		return e.fallbackAllocation(target, extraPayment)
	}
	return explanation
}

func (e *Explainer) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: "You are a personal-finance coach who explains debt repayment plans in clear, encouraging, jargon-free language. You are always specific with amounts and timelines and you never invent numbers that were not provided.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, e.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.apiKey))

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var decoded openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return decoded.Choices[0].Message.Content, nil
}

func (e *Explainer) formatAccounts(accounts []domain.DebtAccount) string {
	var b strings.Builder
	for _, a := range accounts {
		fmt.Fprintf(&b, "- %s: $%.2f at %.2f%% per year\n", a.Name, a.Balance, a.AnnualInterestRate)
	}
	return b.String()
}

func (e *Explainer) fallbackComparison(cmp domain.StrategyComparison) string {
	if cmp.Recommendation == domain.Avalanche {
		return fmt.Sprintf("Paying your highest-rate debt first (avalanche) saves you $%.2f in interest and makes you debt-free %d months sooner than paying the smallest balance first. With differences this large, the math wins: target the highest interest rate.",
			cmp.InterestSaved, cmp.TimeSavedMonths)
	}
	return fmt.Sprintf("Both orderings finish within %d months of each other and the interest difference is only $%.2f. When the numbers are this close, paying the smallest balance first (snowball) is the better plan: each early payoff frees a payment and keeps you motivated.",
		cmp.TimeSavedMonths, cmp.InterestSaved)
}

func (e *Explainer) fallbackAllocation(target domain.AllocationRecommendation, extraPayment float64) string {
	return fmt.Sprintf("Put the full $%.2f of extra budget toward account %s, which carries your highest interest rate. Every dollar there stops more interest than it would anywhere else, saving you $%.2f and %d months on that account alone.",
		extraPayment, target.AccountID, target.ImpactOnInterest, target.ImpactOnPayoffTime)
}
