package contracts

import (
	"context"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	Logout(ctx context.Context, sessionID string) error
}
