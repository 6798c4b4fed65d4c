package auth

import (
	"context"
	"strings"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"
	"nutrivida-service/internal/pkg/exceptions"
	"nutrivida-service/internal/pkg/utils"

	"github.com/google/uuid"
)

// StaffPolicy decides whether an email belongs to clinic staff. It is
// supplied by the composition root so access control never hardcodes into
// the engine or the handlers.
type StaffPolicy func(email string) bool

// NewStaffPolicy builds the policy from the configured allow-list.
func NewStaffPolicy(internalConfig *config.InternalConfig) StaffPolicy {
	allowed := make(map[string]struct{}, len(internalConfig.Admin.StaffEmails))
	for _, email := range internalConfig.Admin.StaffEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}
	return func(email string) bool {
		_, ok := allowed[strings.ToLower(email)]
		return ok
	}
}

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	StaffPolicy     StaffPolicy
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	staffPolicy StaffPolicy,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		StaffPolicy:     staffPolicy,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := constvars.RoleTypePatient
	if uc.StaffPolicy(email) {
		role = constvars.RoleTypeStaff
	}

	now := time.Now()
	user := &models.User{
		Email:    email,
		Password: hashed,
		FullName: strings.TrimSpace(request.FullName),
		Phone:    strings.TrimSpace(request.Phone),
		Role:     role,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return uc.openSession(ctx, user)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.openSession(ctx, user)
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, sessionID)
}

func (uc *authUsecase) openSession(ctx context.Context, user *models.User) (*responses.Auth, error) {
	sessionID := uuid.New().String()
	session := models.Session{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}

	expiry := time.Hour * time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours)
	if err := uc.RedisRepository.Set(ctx, sessionID, session, expiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, time.Hour*time.Duration(uc.InternalConfig.JWT.ExpTimeInHour))
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token:    token,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
