package session

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct{}

func NewSessionService() contracts.SessionService {
	return &sessionService{}
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	if session.UserID == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return &session, nil
}
