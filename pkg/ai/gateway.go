package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/onboardhq/task-extractor/pkg/config"
)

// Sentinel errors exposed to callers so each gateway failure mode stays
// distinguishable. Transport and status-code details are wrapped underneath.
var (
	ErrNotConfigured     = errors.New("ai gateway api key is not configured")
	ErrRateLimited       = errors.New("ai gateway rate limit exceeded")
	ErrQuotaExhausted    = errors.New("ai gateway credits exhausted")
	ErrUnavailable       = errors.New("ai gateway unavailable")
	ErrMalformedResponse = errors.New("ai gateway response not in expected format")
)

// GatewayClient is a minimal client for OpenAI-compatible chat completion
// endpoints, used for constrained tool-call generation.
type GatewayClient struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewGatewayClient creates a gateway client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGatewayClient(cfg *config.AIConfig) *GatewayClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("AI_GATEWAY_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("AI_GATEWAY_URL")
		if base == "" {
			base = "https://ai.gateway.lovable.dev"
		}
	}

	model := "google/gemini-2.5-flash"
	temperature := 0.2
	maxTokens := 4096
	timeout := 30 * time.Second
	if cfg != nil {
		if cfg.Model != "" {
			model = cfg.Model
		}
		if cfg.Temperature > 0 {
			temperature = cfg.Temperature
		}
		if cfg.MaxTokens > 0 {
			maxTokens = cfg.MaxTokens
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &GatewayClient{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(base, "/"),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &http.Client{Timeout: timeout},
	}
}

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool describes a function the model is asked to call
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction carries the function name, description, and JSON schema
type ToolFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// ToolChoice forces the model to call a specific function
type ToolChoice struct {
	Type     string             `json:"type"`
	Function ToolChoiceFunction `json:"function"`
}

// ToolChoiceFunction names the forced function
type ToolChoiceFunction struct {
	Name string `json:"name"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    []Message   `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
	Tools       []Tool      `json:"tools,omitempty"`
	ToolChoice  *ToolChoice `json:"tool_choice,omitempty"`
}

// ToolCall is one function invocation returned by the model
type ToolCall struct {
	ID       string `json:"id,omitempty"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content   string     `json:"content"`
			ToolCalls []ToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// CallTool sends a chat completion constrained to the given tool and returns
// the raw arguments of the first matching tool call. Exactly one request is
// made; retrying is a caller concern.
func (g *GatewayClient) CallTool(ctx context.Context, system, user string, tool Tool) (json.RawMessage, error) {
	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}

	reqBody := ChatRequest{
		Model: g.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Tools:       []Tool{tool},
		ToolChoice: &ToolChoice{
			Type:     "function",
			Function: ToolChoiceFunction{Name: tool.Function.Name},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := g.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: gateway returned status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrMalformedResponse, err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrMalformedResponse)
	}
	for _, tc := range cr.Choices[0].Message.ToolCalls {
		if tc.Function.Name == tool.Function.Name && tc.Function.Arguments != "" {
			return json.RawMessage(tc.Function.Arguments), nil
		}
	}
	return nil, fmt.Errorf("%w: no %s tool call in response", ErrMalformedResponse, tool.Function.Name)
}
