package mysql

import (
	"context"
	"errors"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Save(ctx context.Context, c *domain.Contact) error {
	return dbFrom(ctx, r.db).Create(c).Error
}

func (r *contactRepo) FindByID(ctx context.Context, id uint64) (*domain.Contact, error) {
	var c domain.Contact
	if err := dbFrom(ctx, r.db).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) FindRecent(ctx context.Context, limit int) ([]domain.Contact, error) {
	var out []domain.Contact
	q := dbFrom(ctx, r.db).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *contactRepo) SetRead(ctx context.Context, id uint64, read bool) (*domain.Contact, error) {
	res := dbFrom(ctx, r.db).Model(&domain.Contact{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return nil, res.Error
	}
	return r.FindByID(ctx, id)
}

func (r *contactRepo) Delete(ctx context.Context, id uint64) error {
	res := dbFrom(ctx, r.db).Delete(&domain.Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Contact{}).Count(&n).Error
	return n, err
}
