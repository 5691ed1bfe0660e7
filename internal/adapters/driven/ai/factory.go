// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	openaillm "github.com/DiengWinz/acl-chatbot-api/internal/adapters/driven/llm/openai"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult contains the result of AI service initialisation.
type InitResult struct {
	LLMService driven.LLMService // Nil when no provider is configured or reachable.
	Warnings   []string          // Non-fatal issues that caused fallback.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// Init creates the LLM service from settings. When validate is true the
// provider is pinged first. Failures never abort startup: the result
// carries a warning and a nil service, so replies degrade to the
// "service unavailable" text.
func Init(settings *domain.LLMSettings, validate bool) *InitResult {
	result := &InitResult{}

	if settings == nil || !settings.IsConfigured() {
		result.Warnings = append(result.Warnings, "GROQ_API_KEY non configurée, réponses LLM désactivées")
		return result
	}

	var (
		svc driven.LLMService
		err error
	)
	if validate {
		svc, err = CreateAndValidateLLMService(settings)
	} else {
		svc, err = CreateLLMService(settings)
	}
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return result
	}

	result.LLMService = svc
	return result
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Check GROQ_API_KEY and GROQ_MODEL",
			domain.ErrLLMUnavailable, err)
	}

	if svc == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Check GROQ_API_KEY and GROQ_BASE_URL",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return fmt.Errorf("%w: GROQ_API_KEY is not set", domain.ErrLLMUnavailable)
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// CreateLLMService creates the LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:            settings.APIKey,
		BaseURL:           settings.BaseURL,
		Model:             settings.Model,
		Timeout:           settings.Timeout,
		RequestsPerMinute: settings.RequestsPerMinute,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}
