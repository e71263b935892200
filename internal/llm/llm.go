// Package llm handles LLM provider communication and error classification.
// Prompt construction and the retry policy live elsewhere; this package
// only knows how to complete a prompt and how to tell failure kinds apart.
package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Provider is the interface for LLM backends.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// NewProvider is the factory for creating LLM providers. It is a package-level
// variable so tests can replace it with a mock without modifying the call site.
// Tests must restore the original value; use t.Cleanup to do so safely.
var NewProvider func(providerName, model string) (Provider, error) = defaultNewProvider

// defaultNewProvider dispatches to the appropriate provider implementation.
func defaultNewProvider(providerName, model string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case "anthropic", "":
		return newAnthropicProvider(model)
	case "openai":
		return newOpenAIProvider(model)
	case "google":
		return newGoogleProvider(model)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", providerName)
	}
}

// ErrContentFiltered marks a provider refusal on policy grounds. Providers
// wrap it when they can tell; IsContentFilter additionally sniffs error text
// for refusal markers from providers that only report free-form messages.
var ErrContentFiltered = errors.New("llm: content filtered by provider")

// contentFilterRe matches the refusal signatures the big three providers
// put into error messages.
// "refused" alone is not enough: "connection refused" is a transport error.
var contentFilterRe = regexp.MustCompile(`(?i)content[ _]?filter|content policy|safety (?:system|setting|filter)|blocked by|refusal|refused to (?:answer|respond|comply)`)

// IsContentFilter reports whether err is a policy refusal. Refusals are
// terminal: the retry controller must not retry them.
func IsContentFilter(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrContentFiltered) {
		return true
	}
	return contentFilterRe.MatchString(err.Error())
}

// IsTimeout reports whether err is a deadline expiry on the LLM call.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

// retryableRe matches the validation-class failure signatures that warrant
// the single corrective retry.
var retryableRe = regexp.MustCompile(`(?i)parse|format|schema|structure|validation`)

// IsRetryable reports whether err is a validation-class failure. Content
// filters and timeouts are never retryable, whatever their message says.
func IsRetryable(err error) bool {
	if err == nil || IsContentFilter(err) || IsTimeout(err) {
		return false
	}
	return retryableRe.MatchString(err.Error())
}
