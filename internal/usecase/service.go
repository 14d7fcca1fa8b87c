package usecase

import (
	"movietime/internal/data/repository"
	"movietime/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Identity IdentityService
	Catalog  CatalogService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Identity: NewIdentityService(repo.User, log),
		Catalog:  NewCatalogService(repo.Movie, log),
		Booking:  NewBookingService(repo, log),
	}
}
