package repository

import (
	"context"
	"errors"
	"time"

	"glory-event-api/internal/domain"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by write operations targeting a missing row.
// Read operations return a nil record instead.
var ErrNotFound = errors.New("record not found")

// TxManager runs fn inside one storage transaction. Repositories called with
// the ctx fn receives join that transaction; any error from fn rolls the
// whole unit back.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindFeatured(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	CountBySlug(ctx context.Context, slug string) (int64, error)
	Save(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Save(ctx context.Context, o *domain.Order) error
	SaveLines(ctx context.Context, lines []domain.OrderLine) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	SumTotalExcluding(ctx context.Context, excluded domain.OrderStatus) (decimal.Decimal, error)
}

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindFeatured(ctx context.Context) ([]domain.Service, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Service, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Service, error)
	Count(ctx context.Context) (int64, error)
}

type PortfolioRepository interface {
	FindAll(ctx context.Context) ([]domain.Portfolio, error)
	FindFeatured(ctx context.Context) ([]domain.Portfolio, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Portfolio, error)
	FindByID(ctx context.Context, id uint64) (*domain.Portfolio, error)
	Save(ctx context.Context, p *domain.Portfolio) error
	Update(ctx context.Context, p *domain.Portfolio) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type ContactRepository interface {
	Save(ctx context.Context, c *domain.Contact) error
	FindByID(ctx context.Context, id uint64) (*domain.Contact, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Contact, error)
	SetRead(ctx context.Context, id uint64, read bool) (*domain.Contact, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id uint64) (*domain.Admin, error)
	RecordLogin(ctx context.Context, id uint64, at time.Time, ip string) error
	SaveToken(ctx context.Context, t *domain.AdminToken) error
	FindToken(ctx context.Context, token string) (*domain.AdminToken, error)
	DeleteToken(ctx context.Context, token string) error
	DeleteTokensByDevice(ctx context.Context, adminID uint64, deviceName string) error
}

type PageViewRepository interface {
	Save(ctx context.Context, v *domain.PageView) error
	LastViewSince(ctx context.Context, ip, pageName string, since time.Time) (*domain.PageView, error)
	Statistics(ctx context.Context, now time.Time) (*domain.ViewStatistics, error)
}
