package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/transcript-analyzer/internal/config"
	"google.golang.org/genai"
)

type GeminiServiceInterface interface {
	GenerateContent(ctx context.Context, model string, prompt string) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type GeminiService struct {
	Client            *genai.Client
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	consecutiveErrors int
	circuitBreakerMax int
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		Client:            client,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
	}, nil
}

// GenerateContent asks Gemini to produce text for a prompt, with retries for
// transient failures.
func (s *GeminiService) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	var text string
	err := s.withRetry(ctx, "GenerateContent", func(ctx context.Context) error {
		genConfig := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		}
		result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
		if err != nil {
			return err
		}
		if err := validateGenerateResponse(result); err != nil {
			return fmt.Errorf("invalid response: %w", err)
		}
		text = result.Text()
		return nil
	})
	return text, err
}

// GenerateEmbedding embeds a text with gemini-embedding-001.
func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmed) > 10000 {
		log.Printf("Warning: text length %d exceeds recommended limit, truncating...", len(trimmed))
		trimmed = trimmed[:10000]
	}

	content := []*genai.Content{genai.NewContentFromText(trimmed, genai.RoleUser)}

	var embedding []float32
	err := s.withRetry(ctx, "GenerateEmbedding", func(ctx context.Context) error {
		result, err := s.Client.Models.EmbedContent(ctx, "gemini-embedding-001", content, nil)
		if err != nil {
			return err
		}
		embedding, err = validateEmbeddingResponse(result)
		if err != nil {
			return fmt.Errorf("invalid embedding response: %w", err)
		}
		return nil
	})
	return embedding, err
}

// withRetry runs one API call with exponential backoff, jitter, and a simple
// circuit breaker on consecutive failures.
func (s *GeminiService) withRetry(ctx context.Context, op string, call func(ctx context.Context) error) error {
	if s.consecutiveErrors >= s.circuitBreakerMax {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			log.Printf("Retry attempt %d/%d for %s after %v", attempt, s.MaxRetries, op, delay)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		err := call(timeoutCtx)
		if err == nil {
			s.consecutiveErrors = 0
			return nil
		}
		lastErr = err

		if !isRetryableError(err) {
			log.Printf("Non-retryable error: %v", err)
			s.consecutiveErrors++
			return fmt.Errorf("%s failed: %w", op, err)
		}
		log.Printf("Retryable error on attempt %d: %v", attempt+1, err)
	}

	s.consecutiveErrors++
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", s.MaxRetries, op, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(float64(jitter)*0.5)
	return delay
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429: // Rate limit
			return true
		case 500, 502, 503, 504: // Server errors
			return true
		case 400, 401, 403, 404: // Client errors
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}
	return false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embedding := resp.Embeddings[0].Values
	if len(embedding) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embedding {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embedding, nil
}
