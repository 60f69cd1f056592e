package services

import (
	"context"
	"strings"
	"time"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type CreatePortfolioInput struct {
	Title       string
	Description string
	Image       string
	Category    string
	Featured    bool
	Date        time.Time
}

type UpdatePortfolioInput struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	Featured    *bool
	Date        *time.Time
}

type PortfolioService struct {
	portfolio repository.PortfolioRepository
	log       *logrus.Logger
}

func NewPortfolioService(portfolio repository.PortfolioRepository, log *logrus.Logger) *PortfolioService {
	return &PortfolioService{portfolio: portfolio, log: log}
}

func (s *PortfolioService) ListEntries(ctx context.Context) ([]domain.Portfolio, error) {
	out, err := s.portfolio.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list portfolio", err)
	}
	return out, nil
}

func (s *PortfolioService) FeaturedEntries(ctx context.Context) ([]domain.Portfolio, error) {
	out, err := s.portfolio.FindFeatured(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list featured portfolio", err)
	}
	return out, nil
}

func (s *PortfolioService) EntriesByCategory(ctx context.Context, category string) ([]domain.Portfolio, error) {
	out, err := s.portfolio.FindByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal("failed to list portfolio by category", err)
	}
	return out, nil
}

func (s *PortfolioService) EntryByID(ctx context.Context, id uint64) (*domain.Portfolio, error) {
	p, err := s.portfolio.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load portfolio entry", err)
	}
	if p == nil {
		return nil, apperr.NotFound("portfolio entry not found")
	}
	return p, nil
}

func validateCreatePortfolio(in CreatePortfolioInput) apperr.FieldErrors {
	fields := apperr.FieldErrors{}
	if in.Title == "" {
		fields.Add("title", "title is required")
	} else if len(in.Title) > 255 {
		fields.Add("title", "title must not exceed 255 characters")
	}
	if in.Image == "" {
		fields.Add("image", "image is required")
	}
	if !domain.ValidPortfolioCategory(in.Category) {
		fields.Add("category", "category must be one of: "+strings.Join(domain.PortfolioCategories, ", "))
	}
	if in.Date.IsZero() {
		fields.Add("date", "date is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *PortfolioService) CreateEntry(ctx context.Context, in CreatePortfolioInput) (*domain.Portfolio, error) {
	if fields := validateCreatePortfolio(in); fields != nil {
		return nil, apperr.Validation("validation failed", fields)
	}

	p := &domain.Portfolio{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Featured:    in.Featured,
		Date:        in.Date,
	}
	if err := s.portfolio.Save(ctx, p); err != nil {
		return nil, apperr.Internal("failed to create portfolio entry", err)
	}
	s.log.WithField("portfolio_id", p.ID).Info("portfolio entry created")
	return p, nil
}

func (s *PortfolioService) UpdateEntry(ctx context.Context, id uint64, in UpdatePortfolioInput) (*domain.Portfolio, error) {
	p, err := s.portfolio.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load portfolio entry", err)
	}
	if p == nil {
		return nil, apperr.NotFound("portfolio entry not found")
	}

	fields := apperr.FieldErrors{}
	if in.Title != nil {
		if *in.Title == "" || len(*in.Title) > 255 {
			fields.Add("title", "title must be between 1 and 255 characters")
		} else {
			p.Title = *in.Title
		}
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Category != nil {
		if !domain.ValidPortfolioCategory(*in.Category) {
			fields.Add("category", "category must be one of: "+strings.Join(domain.PortfolioCategories, ", "))
		} else {
			p.Category = *in.Category
		}
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("validation failed", fields)
	}

	if err := s.portfolio.Update(ctx, p); err != nil {
		return nil, apperr.Internal("failed to update portfolio entry", err)
	}
	return p, nil
}

func (s *PortfolioService) DeleteEntry(ctx context.Context, id uint64) error {
	if err := s.portfolio.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("portfolio entry not found")
		}
		return apperr.Internal("failed to delete portfolio entry", err)
	}
	return nil
}
