package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stablewise/stablewise-backend/internal/config"
	"github.com/stablewise/stablewise-backend/internal/views"
)

var ErrSummaryUnavailable = errors.New("performance summary unavailable")

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const summarySystemPrompt = "You are an expert equestrian analyst who creates professional performance summaries for sport horses and ponies."

// SummaryService generates AI performance summaries from competition history.
type SummaryService struct {
	cfg *config.Config
}

func NewSummaryService(cfg *config.Config) *SummaryService {
	return &SummaryService{cfg: cfg}
}

// GeneratePerformanceSummary calls the chat completions API with the animal's
// results. The model output is returned as-is; callers treat generation as an
// opaque function.
func (s *SummaryService) GeneratePerformanceSummary(ctx context.Context, animalName, animalType string, results []views.CompetitionResultView) (string, error) {
	if s.cfg.OpenAIAPIKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrSummaryUnavailable)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: s.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: summarySystemPrompt},
			{Role: "user", Content: s.buildPrompt(animalName, animalType, results)},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OpenAIAPIURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	client := &http.Client{Timeout: s.cfg.AITimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", ErrSummaryUnavailable, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrSummaryUnavailable)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func (s *SummaryService) buildPrompt(animalName, animalType string, results []views.CompetitionResultView) string {
	var lines []string
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s (%s): %scm fences, %s faults, placed %s, rider: %s, location: %s",
			r.CompetitionName, r.CompetitionDate,
			intOrUnknown(r.FenceHeightCm),
			strOrUnknown(r.Faults),
			placementLine(r.Placement, r.TotalCompetitors),
			r.RiderName, r.Location))
	}

	return fmt.Sprintf(`You are an expert equestrian analyst specializing in sport horse and pony performance evaluation.

Create a professional, data-driven performance summary for %s, a %s. Base your analysis strictly on the following competition results:

%s

Your summary should:
1. Be 2-3 concise paragraphs
2. Highlight key strengths and performance patterns
3. Note progression or consistency trends
4. Mention notable achievements
5. Use professional equestrian terminology
6. Be factual and based only on the provided data
7. Not speculate about price or market value

Write in a confident, professional tone suitable for serious buyers and sellers in the international sport horse market.`,
		animalName, animalType, strings.Join(lines, "\n"))
}

func intOrUnknown(v *int) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *v)
}

func strOrUnknown(v *string) string {
	if v == nil || *v == "" {
		return "unknown"
	}
	return *v
}

func placementLine(place, total *int) string {
	switch {
	case place == nil:
		return "unknown"
	case total == nil:
		return fmt.Sprintf("%d", *place)
	default:
		return fmt.Sprintf("%d/%d", *place, *total)
	}
}
