package chat

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type chatCompletionClient struct {
	BaseUrl    string
	ApiKey     string
	Model      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewChatCompletionClient wraps the chat-completions endpoint behind a local
// rate limiter, so a chatty patient cannot burn the provider quota.
func NewChatCompletionClient(internalConfig *config.InternalConfig) contracts.ChatCompletionClient {
	perMinute := internalConfig.Chat.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 20
	}
	return &chatCompletionClient{
		BaseUrl: internalConfig.Chat.BaseUrl,
		ApiKey:  internalConfig.Chat.ApiKey,
		Model:   internalConfig.Chat.Model,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Chat.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

type chatCompletionRequest struct {
	Model    string            `json:"model"`
	Messages []models.ChatTurn `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message models.ChatTurn `json:"message"`
	} `json:"choices"`
}

func (c *chatCompletionClient) Complete(ctx context.Context, messages []models.ChatTurn) (string, error) {
	if !c.Limiter.Allow() {
		return "", exceptions.ErrChatRateLimited(nil)
	}

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/chat/completions", c.BaseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+c.ApiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrChatCompletionStatus(resp.StatusCode)
	}

	completion := new(chatCompletionResponse)
	if err := json.NewDecoder(resp.Body).Decode(completion); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrChatCompletionStatus(resp.StatusCode)
	}
	return completion.Choices[0].Message.Content, nil
}
