package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"relationship_mojo_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport returns canned provider responses in order, recording
// each request it sees.
type scriptedTransport struct {
	responses []*http.Response
	errs      []error
	calls     int
	requests  []*http.Request
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	i := s.calls
	s.calls++
	s.requests = append(s.requests, req)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return nil, io.ErrUnexpectedEOF
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func successBody(content string, tokens int) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"total_tokens": tokens},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		BaseURL:         "https://ai.test/v1",
		APIKey:          "test-key",
		Model:           "test-model",
		Temperature:     0.7,
		MaxTokens:       4000,
		ReasoningEffort: "high",
		MaxRetries:      3,
		BaseDelayMs:     10,
		TimeoutMs:       5000,
	}
}

func newTestAIService(transport http.RoundTripper) (*AIService, *[]time.Duration) {
	s := NewAIService(testAIConfig())
	s.client = &http.Client{Transport: transport}

	var slept []time.Duration
	s.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return s, &slept
}

func TestGenerateAnalysisSucceedsFirstTry(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(200, successBody("# Your Personalized Partner Profile\n...", 1234)),
		},
	}
	s, slept := newTestAIService(transport)

	result, err := s.GenerateAnalysis(context.Background(), "prompt", "user-1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Analysis, "Partner Profile")
	assert.Equal(t, 1234, result.TokensUsed)
	assert.Equal(t, 1, transport.calls)
	assert.Empty(t, *slept, "no backoff on first-try success")
}

func TestGenerateAnalysisRetriesThenSucceeds(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(500, `{"error":{"message":"upstream overloaded"}}`),
			jsonResponse(429, `{"error":{"message":"rate limited"}}`),
			jsonResponse(200, successBody("report", 42)),
		},
	}
	s, slept := newTestAIService(transport)

	result, err := s.GenerateAnalysis(context.Background(), "prompt", "user-1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "report", result.Analysis)
	assert.Equal(t, 3, transport.calls)

	base := 10 * time.Millisecond
	require.Len(t, *slept, 2)
	assert.Equal(t, 2*base, (*slept)[0])
	assert.Equal(t, 4*base, (*slept)[1])
}

func TestGenerateAnalysisExhaustsRetries(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(500, `{"error":{"message":"boom"}}`),
			jsonResponse(500, `{"error":{"message":"boom"}}`),
			jsonResponse(500, `{"error":{"message":"boom"}}`),
		},
	}
	s, _ := newTestAIService(transport)

	result, err := s.GenerateAnalysis(context.Background(), "prompt", "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI analysis failed after 3 attempts")
	assert.Equal(t, 3, transport.calls, "exactly MaxRetries attempts, no more")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Empty(t, result.Analysis)
	assert.Contains(t, result.Error, "failed after 3 attempts")
}

func TestGenerateAnalysisStopsWhenContextCancelled(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(500, `{"error":{"message":"boom"}}`),
		},
	}
	s := NewAIService(testAIConfig())
	s.client = &http.Client{Transport: transport}
	s.sleep = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	result, err := s.GenerateAnalysis(context.Background(), "prompt", "user-1")
	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, transport.calls, "cancellation during backoff stops further attempts")
}

func TestGenerateAnalysisRequestShape(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(200, successBody("ok", 1)),
		},
	}
	s, _ := newTestAIService(transport)

	_, err := s.GenerateAnalysis(context.Background(), "the prompt", "user-7")
	require.NoError(t, err)

	require.Len(t, transport.requests, 1)
	req := transport.requests[0]
	assert.Equal(t, "https://ai.test/v1/chat/completions", req.URL.String())
	assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	var parsed ChatCompletionRequest
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "test-model", parsed.Model)
	assert.Equal(t, "high", parsed.ReasoningEffort)
	assert.Equal(t, "user-7", parsed.User)
	require.Len(t, parsed.Messages, 1)
	assert.Equal(t, "user", parsed.Messages[0].Role)
	assert.Equal(t, "the prompt", parsed.Messages[0].Content)
}

func TestGenerateAnalysisNoChoices(t *testing.T) {
	transport := &scriptedTransport{
		responses: []*http.Response{
			jsonResponse(200, `{"choices":[],"usage":{"total_tokens":0}}`),
			jsonResponse(200, `{"choices":[],"usage":{"total_tokens":0}}`),
			jsonResponse(200, `{"choices":[],"usage":{"total_tokens":0}}`),
		},
	}
	s, _ := newTestAIService(transport)

	_, err := s.GenerateAnalysis(context.Background(), "prompt", "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestBackoffDelayDoubles(t *testing.T) {
	s := NewAIService(config.AIConfig{BaseDelayMs: 1000})
	assert.Equal(t, 2*time.Second, s.backoffDelay(1))
	assert.Equal(t, 4*time.Second, s.backoffDelay(2))
	assert.Equal(t, 8*time.Second, s.backoffDelay(3))
}
