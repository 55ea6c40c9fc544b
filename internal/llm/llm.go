// Package llm provides completion clients for the language model
// providers the analyzer can talk to.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrEmptyCompletion is returned when a provider responds without
	// any usable text content.
	ErrEmptyCompletion = errors.New("llm: empty completion")

	// ErrUnknownProvider is returned by New for unrecognized provider names.
	ErrUnknownProvider = errors.New("llm: unknown provider")

	// ErrNotConfigured is returned when a provider is missing its API key.
	ErrNotConfigured = errors.New("llm: provider not configured")
)

// Request carries one completion request to a provider.
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Completer produces a raw text completion for a request. Implementations
// are safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
