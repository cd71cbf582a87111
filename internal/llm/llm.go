// Package llm abstracts text generation providers and owns the prompt
// templates used for analysis and cover letter generation.
package llm

import (
	"context"
	"errors"
)

// Client abstracts generation providers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request captures a single generation call.
type Request struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// AnalysisRequest wraps an analysis prompt with its generation settings.
func AnalysisRequest(prompt string) Request {
	return Request{Prompt: prompt, Temperature: 0.7, MaxTokens: 2000}
}

// CoverLetterRequest wraps a cover letter prompt with its generation settings.
func CoverLetterRequest(prompt string) Request {
	return Request{Prompt: prompt, Temperature: 0.8, MaxTokens: 1000}
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is
// configured.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotImplemented
}
