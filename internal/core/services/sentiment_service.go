package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

const openRouterChatURL = "https://openrouter.ai/api/v1/chat/completions"

const sentimentSystemPrompt = "You are a sentiment analysis tool. Analyze the following text and respond with ONLY one of these words: POSITIVE, NEUTRAL, or NEGATIVE."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenRouterSentimentService labels feedback text by calling an OpenRouter
// chat model. Classification failures degrade to a low-confidence NEUTRAL
// rather than failing the caller.
type OpenRouterSentimentService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenRouterSentimentService(apiKey, model string) *OpenRouterSentimentService {
	return &OpenRouterSentimentService{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ClassifySentiment returns the sentiment label for the given text. Any
// transport or parse failure yields the NEUTRAL fallback with a nil error.
func (s *OpenRouterSentimentService) ClassifySentiment(ctx context.Context, text string) (*domain.Sentiment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fallback := &domain.Sentiment{Type: domain.SentimentNeutral, Confidence: 0.5}

	if s.apiKey == "" {
		logger.Warn("Sentiment classification skipped, no API key configured")
		return fallback, nil
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: sentimentSystemPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return fallback, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterChatURL, bytes.NewReader(body))
	if err != nil {
		return fallback, nil
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn("Sentiment classification request failed", slog.String("error", err.Error()))
		return fallback, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Sentiment classification returned non-OK status", slog.Int("status", resp.StatusCode))
		return fallback, nil
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Warn("Failed to decode sentiment response", slog.String("error", err.Error()))
		return fallback, nil
	}
	if len(parsed.Choices) == 0 {
		return fallback, nil
	}

	label := strings.ToUpper(strings.TrimSpace(parsed.Choices[0].Message.Content))
	sentimentType := domain.SentimentNeutral
	switch label {
	case string(domain.SentimentPositive):
		sentimentType = domain.SentimentPositive
	case string(domain.SentimentNegative):
		sentimentType = domain.SentimentNegative
	}

	return &domain.Sentiment{Type: sentimentType, Confidence: 0.8}, nil
}
