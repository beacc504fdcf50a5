package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"roi-agent/domain"
	"roi-agent/logging"
)

// AIService generates narrative explanations of scenario results. It is
// enabled by setting OPENAI_API_KEY; without a key (or on any API error)
// it falls back to a deterministic rule-based summary.
type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateScenarioExplanation produces a short narrative for the computed
// scenario set.
func (s *AIService) GenerateScenarioExplanation(
	input domain.ProjectInput,
	set domain.ScenarioSet,
	verdict string,
) string {
	if !s.enabled {
		return s.generateFallbackExplanation(input, set, verdict)
	}

	expected := set.Expected

	irrText := "did not converge and is unreliable"
	if expected.IRR.Reliable() {
		irrText = formatPercent(expected.IRR.RatePct)
	}

	paybackText := fmt.Sprintf("the investment is not recovered within the %d-month duration", input.DurationMonths)
	if expected.Payback.Recovered {
		paybackText = fmt.Sprintf("the investment is recovered after %s", formatMonths(expected.Payback.Months))
	}

	prompt := fmt.Sprintf(`Analyze this investment project evaluation and write a clear, educational explanation.

PROJECT:
- Initial investment: %s
- Annual revenue increase: %s (growth %s per year)
- Annual operating + maintenance costs: %s
- Duration: %d months
- Discount rate: %s

EXPECTED SCENARIO:
- ROI: %s
- NPV of operating flows: %s
- IRR: %s
- Payback: %s

SCENARIO RANGE:
- Best-case ROI (revenue x%.2f): %s
- Worst-case ROI (revenue x%.2f): %s

VERDICT: %s

INSTRUCTIONS:
1. Explain in plain language what the metrics say about this project.
2. Mention the spread between best and worst case and what it implies about risk.
3. Be realistic, not promotional.

Write 3-4 sentences that a non-financial reader can follow.`,
		formatMoney(input.InitialInvestment),
		formatMoney(input.AnnualRevenue), formatPercent(input.AnnualRevenueGrowth),
		formatMoney(input.AnnualOperatingCosts+input.AnnualMaintenance),
		input.DurationMonths,
		formatPercent(input.DiscountRate),
		formatPercent(expected.ROIPct),
		formatMoney(expected.NPV),
		irrText,
		paybackText,
		input.BestCaseMultiplier, formatPercent(set.Best.ROIPct),
		input.WorstCaseMultiplier, formatPercent(set.Worst.ROIPct),
		verdict)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		logging.Sugar.Warnw("AI explanation failed, using fallback", "error", err)
		return s.generateFallbackExplanation(input, set, verdict)
	}

	return explanation
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are an experienced corporate finance analyst. You explain project evaluations (ROI, NPV, IRR, payback period) in clear, precise language for readers without a finance background. You are factual and realistic, you never overpromise, and you always mention the main risk visible in the numbers.",
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

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *AIService) generateFallbackExplanation(
	input domain.ProjectInput,
	set domain.ScenarioSet,
	verdict string,
) string {
	expected := set.Expected

	paybackText := fmt.Sprintf("the initial investment of %s is not recovered within the %d-month duration",
		formatMoney(input.InitialInvestment), input.DurationMonths)
	if expected.Payback.Recovered {
		paybackText = fmt.Sprintf("the initial investment of %s is recovered after %s",
			formatMoney(input.InitialInvestment), formatMonths(expected.Payback.Months))
	}

	return fmt.Sprintf("Over %d months the project returns %s on an investment of %s, an ROI of %s, and %s. "+
		"Depending on how revenue develops, the ROI ranges from %s in the worst case to %s in the best case. "+
		"Overall the project is rated as %s.",
		input.DurationMonths,
		formatMoney(expected.TotalRevenue),
		formatMoney(input.InitialInvestment),
		formatPercent(expected.ROIPct),
		paybackText,
		formatPercent(set.Worst.ROIPct),
		formatPercent(set.Best.ROIPct),
		verdict)
}
