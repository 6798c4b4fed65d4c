package chat

import (
	"context"
	"fmt"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	chatRoleSystem    = "system"
	chatRoleUser      = "user"
	chatRoleAssistant = "assistant"
)

type chatUsecase struct {
	Log                  *zap.Logger
	ChatCompletionClient contracts.ChatCompletionClient
	RedisRepository      contracts.RedisRepository
	SystemPrompt         string
	MaxHistoryTurns      int
	HistoryExpiry        time.Duration
}

func NewChatUsecase(
	logger *zap.Logger,
	chatCompletionClient contracts.ChatCompletionClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.ChatUsecase {
	return &chatUsecase{
		Log:                  logger,
		ChatCompletionClient: chatCompletionClient,
		RedisRepository:      redisRepository,
		SystemPrompt:         internalConfig.Chat.SystemPrompt,
		MaxHistoryTurns:      internalConfig.Chat.MaxHistoryTurns,
		HistoryExpiry:        time.Minute * time.Duration(internalConfig.Chat.HistoryExpiryInMinutes),
	}
}

// SendMessage forwards the patient's message with the rolling conversation
// window and caches the updated history per session.
func (uc *chatUsecase) SendMessage(ctx context.Context, sessionID string, request *requests.ChatMessage) (*responses.ChatReply, error) {
	history := uc.loadHistory(ctx, sessionID)
	history = append(history, models.ChatTurn{Role: chatRoleUser, Content: request.Message})
	history = uc.trimHistory(history)

	prompt := make([]models.ChatTurn, 0, len(history)+1)
	if uc.SystemPrompt != "" {
		prompt = append(prompt, models.ChatTurn{Role: chatRoleSystem, Content: uc.SystemPrompt})
	}
	prompt = append(prompt, history...)

	reply, err := uc.ChatCompletionClient.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	history = uc.trimHistory(append(history, models.ChatTurn{Role: chatRoleAssistant, Content: reply}))
	if err := uc.RedisRepository.Set(ctx, historyKey(sessionID), history, uc.HistoryExpiry); err != nil {
		uc.Log.Warn("chat history not cached", zap.Error(err))
	}

	return &responses.ChatReply{Reply: reply}, nil
}

func (uc *chatUsecase) loadHistory(ctx context.Context, sessionID string) []models.ChatTurn {
	data, err := uc.RedisRepository.Get(ctx, historyKey(sessionID))
	if err != nil || data == "" {
		return nil
	}
	var history []models.ChatTurn
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		uc.Log.Warn("chat history cache corrupted, starting fresh", zap.Error(err))
		return nil
	}
	return history
}

func (uc *chatUsecase) trimHistory(history []models.ChatTurn) []models.ChatTurn {
	if uc.MaxHistoryTurns <= 0 || len(history) <= uc.MaxHistoryTurns {
		return history
	}
	return history[len(history)-uc.MaxHistoryTurns:]
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}
