// Package groq talks to Groq's OpenAI-compatible chat completion API.
package groq

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/time/rate"

	"github.com/studypdf/studypdf/internal/core/domain"
	"github.com/studypdf/studypdf/internal/infrastructure/resilience"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"
)

type Options struct {
	BaseURL            string
	Model              string
	RequestTimeout     time.Duration
	RequestsPerSecond  float64
	Burst              int
	ResilienceExecutor *resilience.Executor
}

// Client implements the completion provider port. Retries stay inside
// the resilience executor with SDK retries disabled, so one Complete
// call performs at most the executor's bounded attempts, every attempt
// sending the same rendered prompt.
type Client struct {
	api      openai.Client
	model    string
	executor *resilience.Executor
	limiter  *rate.Limiter
}

func New(apiKey string, options Options) *Client {
	baseURL := strings.TrimRight(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := options.Model
	if model == "" {
		model = defaultModel
	}
	timeout := options.RequestTimeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	executor := options.ResilienceExecutor
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig())
	}

	var limiter *rate.Limiter
	if options.RequestsPerSecond > 0 {
		burst := options.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(options.RequestsPerSecond), burst)
	}

	api := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	)

	return &Client{
		api:      api,
		model:    model,
		executor: executor,
		limiter:  limiter,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Complete(ctx context.Context, prompt domain.Prompt) (string, error) {
	rendered := prompt.Render()

	var out string
	err := c.executor.Execute(ctx, "groq_complete", func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(rendered),
			},
			Model: openai.ChatModel(c.model),
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("completion returned no choices")
		}
		out = strings.TrimSpace(resp.Choices[0].Message.Content)
		return nil
	}, classifyGroqError)
	if err != nil {
		return "", wrapTemporaryIfNeeded("groq complete", err)
	}
	return out, nil
}
