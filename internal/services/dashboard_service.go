package services

import (
	"context"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"
)

// DashboardService aggregates the back-office headline counts.
type DashboardService struct {
	services  repository.ServiceRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	contacts  repository.ContactRepository
	portfolio repository.PortfolioRepository
}

func NewDashboardService(
	services repository.ServiceRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	contacts repository.ContactRepository,
	portfolio repository.PortfolioRepository,
) *DashboardService {
	return &DashboardService{
		services:  services,
		products:  products,
		orders:    orders,
		contacts:  contacts,
		portfolio: portfolio,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	var err error

	if stats.TotalServices, err = s.services.Count(ctx); err != nil {
		return nil, apperr.Internal("failed to count services", err)
	}
	if stats.TotalProduits, err = s.products.Count(ctx); err != nil {
		return nil, apperr.Internal("failed to count products", err)
	}
	if stats.TotalCommandes, err = s.orders.Count(ctx); err != nil {
		return nil, apperr.Internal("failed to count orders", err)
	}
	if stats.CommandesPending, err = s.orders.CountByStatus(ctx, domain.StatusPending); err != nil {
		return nil, apperr.Internal("failed to count pending orders", err)
	}
	if stats.TotalContacts, err = s.contacts.Count(ctx); err != nil {
		return nil, apperr.Internal("failed to count contacts", err)
	}
	if stats.TotalPortfolio, err = s.portfolio.Count(ctx); err != nil {
		return nil, apperr.Internal("failed to count portfolio", err)
	}

	revenue, err := s.orders.SumTotalExcluding(ctx, domain.StatusCancelled)
	if err != nil {
		return nil, apperr.Internal("failed to sum revenue", err)
	}
	stats.RevenueTotal = revenue.StringFixed(2)

	return stats, nil
}
