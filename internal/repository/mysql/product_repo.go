package mysql

import (
	"context"
	"errors"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := dbFrom(ctx, r.db).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := dbFrom(ctx, r.db).Where("slug = ?", slug).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := dbFrom(ctx, r.db).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *productRepo) FindFeatured(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := dbFrom(ctx, r.db).Where("featured = ?", true).Find(&out).Error
	return out, err
}

func (r *productRepo) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	err := dbFrom(ctx, r.db).Where("category = ?", category).Find(&out).Error
	return out, err
}

func (r *productRepo) CountBySlug(ctx context.Context, slug string) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Product{}).
		Where("slug = ?", slug).Count(&n).Error
	return n, err
}

func (r *productRepo) Save(ctx context.Context, p *domain.Product) error {
	return dbFrom(ctx, r.db).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *domain.Product) error {
	return dbFrom(ctx, r.db).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint64) error {
	res := dbFrom(ctx, r.db).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Product{}).Count(&n).Error
	return n, err
}
