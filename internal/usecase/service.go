package usecase

import (
	"filmestop/internal/data/repository"
	"filmestop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Movie MovieService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		Movie: NewMovieService(repo, log),
	}
}
