package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"relationship_mojo_backend/internal/config"
	"relationship_mojo_backend/pkg/logger"
	"relationship_mojo_backend/pkg/monitoring"
	"relationship_mojo_backend/pkg/tracing"

	"go.uber.org/zap"

	"relationship_mojo_backend/internal/model"
)

// AIService wraps the external text-generation provider. Each invocation is
// bounded: a per-call timeout, a capped number of attempts with exponential
// backoff between them, and either a full markdown report or a terminal
// failure naming the attempt count and last cause. There is no streaming or
// partial-result mode.
type AIService struct {
	config config.AIConfig
	client *http.Client

	// Injection points for tests: sleep replaces the backoff wait, now
	// supplies wall-clock time for telemetry.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
		sleep:  sleepCtx,
		now:    time.Now,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model           string          `json:"model"`
	Messages        []AIChatMessage `json:"messages"`
	Temperature     float64         `json:"temperature,omitempty"`
	MaxTokens       int             `json:"max_tokens,omitempty"`
	User            string          `json:"user,omitempty"`
	ReasoningEffort string          `json:"reasoning_effort,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// backoffDelay is the pure wait-time function between attempts:
// 2^attempt * base.
func (s *AIService) backoffDelay(attempt int) time.Duration {
	base := time.Duration(s.config.BaseDelayMs) * time.Millisecond
	return time.Duration(1<<uint(attempt)) * base
}

// complete performs a single provider call under the configured per-call
// timeout. A timeout is reported like any other failure so the retry loop
// treats it as transient.
func (s *AIService) complete(ctx context.Context, prompt, userID string) (string, int, error) {
	callCtx, cancel := context.WithTimeout(ctx, time.Duration(s.config.TimeoutMs)*time.Millisecond)
	defer cancel()

	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature:     s.config.Temperature,
		MaxTokens:       s.config.MaxTokens,
		User:            userID,
		ReasoningEffort: s.config.ReasoningEffort,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(callCtx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", 0, err
	}

	if result.Error != nil {
		return "", 0, fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", 0, fmt.Errorf("AI returned no choices")
	}

	return result.Choices[0].Message.Content, result.Usage.TotalTokens, nil
}

// GenerateAnalysis runs the retry state machine around the provider call.
// On success the result carries the raw markdown plus usage telemetry; once
// retries are exhausted it carries a failure naming the attempt count and
// the last underlying error, which is also returned. Telemetry never
// affects control flow.
func (s *AIService) GenerateAnalysis(ctx context.Context, prompt, userID string) (*model.AnalysisResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ai.generate_analysis")
	defer span.End()

	start := s.now()
	maxRetries := s.config.MaxRetries

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		text, tokens, err := s.complete(ctx, prompt, userID)
		if err == nil {
			elapsed := s.now().Sub(start)
			monitoring.AnalysisAttempts.WithLabelValues("success").Inc()
			monitoring.AnalysisDuration.Observe(elapsed.Seconds())
			monitoring.AnalysisTokens.Add(float64(tokens))
			logger.Log.Info("analysis generated",
				zap.Int("attempt", attempt),
				zap.Int("tokensUsed", tokens),
				zap.Duration("processingTime", elapsed),
			)
			return &model.AnalysisResult{
				Success:          true,
				Analysis:         text,
				TokensUsed:       tokens,
				ProcessingTimeMs: elapsed.Milliseconds(),
			}, nil
		}

		lastErr = err
		monitoring.AnalysisAttempts.WithLabelValues("failure").Inc()
		logger.Log.Warn("analysis attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", maxRetries),
			zap.Error(err),
		)

		if attempt < maxRetries {
			if err := s.sleep(ctx, s.backoffDelay(attempt)); err != nil {
				lastErr = err
				break
			}
		}
	}

	elapsed := s.now().Sub(start)
	monitoring.AnalysisDuration.Observe(elapsed.Seconds())

	failure := fmt.Errorf("AI analysis failed after %d attempts: %v", maxRetries, lastErr)
	logger.Log.Error("analysis generation exhausted retries",
		zap.Int("attempts", maxRetries),
		zap.Duration("processingTime", elapsed),
		zap.Error(lastErr),
	)

	return &model.AnalysisResult{
		Success:          false,
		Error:            failure.Error(),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}, failure
}
