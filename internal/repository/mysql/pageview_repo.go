package mysql

import (
	"context"
	"errors"
	"time"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type pageViewRepo struct {
	db *gorm.DB
}

func NewPageViewRepository(db *gorm.DB) repository.PageViewRepository {
	return &pageViewRepo{db: db}
}

func (r *pageViewRepo) Save(ctx context.Context, v *domain.PageView) error {
	return dbFrom(ctx, r.db).Create(v).Error
}

func (r *pageViewRepo) LastViewSince(ctx context.Context, ip, pageName string, since time.Time) (*domain.PageView, error) {
	var v domain.PageView
	err := dbFrom(ctx, r.db).
		Where("ip_address = ? AND page_name = ? AND created_at >= ?", ip, pageName, since).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *pageViewRepo) Statistics(ctx context.Context, now time.Time) (*domain.ViewStatistics, error) {
	db := dbFrom(ctx, r.db)
	stats := &domain.ViewStatistics{}

	err := db.Model(&domain.PageView{}).
		Select("DATE(created_at) as date, COUNT(*) as views").
		Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Group("date").Order("date").
		Scan(&stats.DailyViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Select("YEAR(created_at) as year, MONTH(created_at) as month, COUNT(*) as views").
		Where("created_at >= ?", now.AddDate(0, -12, 0)).
		Group("year, month").Order("year, month").
		Scan(&stats.MonthlyViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Select("YEAR(created_at) as year, COUNT(*) as views").
		Group("year").Order("year").
		Scan(&stats.YearlyViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Select("page_name, COUNT(*) as views").
		Group("page_name").Order("views DESC").
		Scan(&stats.PageViews).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&domain.PageView{}).Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Where("DATE(created_at) = ?", now.Format("2006-01-02")).
		Count(&stats.TodayViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Where("MONTH(created_at) = ? AND YEAR(created_at) = ?", int(now.Month()), now.Year()).
		Count(&stats.MonthViews).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&domain.PageView{}).
		Where("YEAR(created_at) = ?", now.Year()).
		Count(&stats.YearViews).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
