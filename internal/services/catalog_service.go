package services

import (
	"context"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"
)

// CatalogService serves the read-only event-services catalog.
type CatalogService struct {
	services repository.ServiceRepository
}

func NewCatalogService(services repository.ServiceRepository) *CatalogService {
	return &CatalogService{services: services}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	out, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list services", err)
	}
	return out, nil
}

func (s *CatalogService) FeaturedServices(ctx context.Context) ([]domain.Service, error) {
	out, err := s.services.FindFeatured(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list featured services", err)
	}
	return out, nil
}

func (s *CatalogService) ServicesByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	out, err := s.services.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("failed to list services by category", err)
	}
	return out, nil
}

func (s *CatalogService) ServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := s.services.FindBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Internal("failed to load service", err)
	}
	if svc == nil {
		return nil, apperr.NotFound("service not found")
	}
	return svc, nil
}
