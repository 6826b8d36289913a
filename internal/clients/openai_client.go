package clients

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

type OpenAIClient struct {
	Client *openai.Client
}

// NewOpenAIClient builds a client for apiKey. A non empty baseURL overrides the
// API endpoint, which is how tests and compatible gateways are reached.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{
		Timeout: openAIRequestTimeout,
	}

	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout", slog.Duration("timeout", openAIRequestTimeout))
	return &OpenAIClient{
		Client: openai.NewClientWithConfig(config),
	}
}

func (o *OpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return o.Client.CreateChatCompletion(ctx, req)
}

func (o *OpenAIClient) HealthCheck(ctx context.Context) bool {
	if _, err := o.Client.ListModels(ctx); err != nil {
		slog.Warn("[OpenAIClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	return true
}
