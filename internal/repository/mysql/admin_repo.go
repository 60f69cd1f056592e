package mysql

import (
	"context"
	"errors"
	"time"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	if err := dbFrom(ctx, r.db).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) FindByID(ctx context.Context, id uint64) (*domain.Admin, error) {
	var a domain.Admin
	if err := dbFrom(ctx, r.db).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) RecordLogin(ctx context.Context, id uint64, at time.Time, ip string) error {
	return dbFrom(ctx, r.db).Model(&domain.Admin{}).Where("id = ?", id).
		Updates(map[string]any{"last_login_at": at, "last_login_ip": ip}).Error
}

func (r *adminRepo) SaveToken(ctx context.Context, t *domain.AdminToken) error {
	return dbFrom(ctx, r.db).Create(t).Error
}

func (r *adminRepo) FindToken(ctx context.Context, token string) (*domain.AdminToken, error) {
	var t domain.AdminToken
	if err := dbFrom(ctx, r.db).Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *adminRepo) DeleteToken(ctx context.Context, token string) error {
	return dbFrom(ctx, r.db).Where("token = ?", token).Delete(&domain.AdminToken{}).Error
}

func (r *adminRepo) DeleteTokensByDevice(ctx context.Context, adminID uint64, deviceName string) error {
	return dbFrom(ctx, r.db).Where("admin_id = ? AND device_name = ?", adminID, deviceName).
		Delete(&domain.AdminToken{}).Error
}
