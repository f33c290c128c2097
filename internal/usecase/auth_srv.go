package usecase

import (
	"context"
	"fmt"
	"time"

	"filmestop/internal/apierr"
	"filmestop/internal/data/entity"
	"filmestop/internal/data/repository"
	"filmestop/internal/dto/request"
	"filmestop/internal/dto/response"
	"filmestop/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// Check for a conflicting account first; the storage unique constraints
	// backstop this lookup under concurrency.
	existing, err := s.repo.User.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == req.Username {
			s.log.Warn("Registration with taken username", zap.String("username", req.Username))
			return nil, apierr.New(apierr.UserNameAlreadyExists)
		}
		s.log.Warn("Registration with taken email", zap.String("email", req.Email))
		return nil, apierr.New(apierr.UserEmailAlreadyExists)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		IsAdmin:      false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, apierr.New(apierr.UserNotFound)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID.String()))
		return nil, apierr.New(apierr.EmailOrPasswordWrong)
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		s.log.Error("Failed to sign access token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.LoginResponse{AccessToken: token}, nil
}

func (s *authService) issueAccessToken(user *entity.User) (string, error) {
	expiry := time.Duration(s.config.JWT.AccessExpiryMinutes) * time.Minute

	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWT.Secret))
}
