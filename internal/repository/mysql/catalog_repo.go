package mysql

import (
	"context"
	"errors"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type serviceRepo struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) FindAll(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	err := dbFrom(ctx, r.db).Find(&out).Error
	return out, err
}

func (r *serviceRepo) FindFeatured(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	err := dbFrom(ctx, r.db).Where("featured = ?", true).Find(&out).Error
	return out, err
}

func (r *serviceRepo) FindByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	var out []domain.Service
	err := dbFrom(ctx, r.db).Where("category = ?", category).Find(&out).Error
	return out, err
}

func (r *serviceRepo) FindBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	var s domain.Service
	if err := dbFrom(ctx, r.db).Where("slug = ?", slug).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Service{}).Count(&n).Error
	return n, err
}

type portfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) repository.PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) FindAll(ctx context.Context) ([]domain.Portfolio, error) {
	var out []domain.Portfolio
	err := dbFrom(ctx, r.db).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *portfolioRepo) FindFeatured(ctx context.Context) ([]domain.Portfolio, error) {
	var out []domain.Portfolio
	err := dbFrom(ctx, r.db).Where("featured = ?", true).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *portfolioRepo) FindByCategory(ctx context.Context, category string) ([]domain.Portfolio, error) {
	var out []domain.Portfolio
	err := dbFrom(ctx, r.db).Where("category = ?", category).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *portfolioRepo) FindByID(ctx context.Context, id uint64) (*domain.Portfolio, error) {
	var p domain.Portfolio
	if err := dbFrom(ctx, r.db).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepo) Save(ctx context.Context, p *domain.Portfolio) error {
	return dbFrom(ctx, r.db).Create(p).Error
}

func (r *portfolioRepo) Update(ctx context.Context, p *domain.Portfolio) error {
	return dbFrom(ctx, r.db).Save(p).Error
}

func (r *portfolioRepo) Delete(ctx context.Context, id uint64) error {
	res := dbFrom(ctx, r.db).Delete(&domain.Portfolio{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Portfolio{}).Count(&n).Error
	return n, err
}
