package controllers

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
)

// sessionFromContext resolves the session payload placed in the context by
// the authentication middleware.
func sessionFromContext(ctx context.Context, sessionService contracts.SessionService) (*models.Session, error) {
	sessionData, _ := ctx.Value(constvars.ContextSessionData).(string)
	return sessionService.ParseSessionData(ctx, sessionData)
}
