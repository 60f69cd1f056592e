package services

import (
	"context"
	"time"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/infra/throttle"
	"glory-event-api/internal/repository"

	"github.com/sirupsen/logrus"
)

// DedupWindow is how long a (visitor IP, page) pair counts as one view.
const DedupWindow = 10 * time.Minute

type PageViewService struct {
	views   repository.PageViewRepository
	limiter throttle.Limiter
	log     *logrus.Logger
}

func NewPageViewService(views repository.PageViewRepository, limiter throttle.Limiter, log *logrus.Logger) *PageViewService {
	return &PageViewService{views: views, limiter: limiter, log: log}
}

// TrackView records one page view unless the same visitor already counted
// for this page inside the dedup window. Returns whether a view was
// recorded. Redis enforces the window; if Redis is unavailable the stored
// views serve as fallback.
func (s *PageViewService) TrackView(ctx context.Context, pageName, ip, userAgent string) (bool, error) {
	if pageName == "" {
		fields := apperr.FieldErrors{}
		fields.Add("page_name", "page_name is required")
		return false, apperr.Validation("validation failed", fields)
	}

	allowed, err := s.limiter.Allow(ctx, ip, pageName, DedupWindow)
	if err != nil {
		s.log.WithError(err).Warn("view throttle unavailable, falling back to storage check")
		recent, dbErr := s.views.LastViewSince(ctx, ip, pageName, time.Now().Add(-DedupWindow))
		if dbErr != nil {
			return false, apperr.Internal("failed to check recent views", dbErr)
		}
		allowed = recent == nil
	}
	if !allowed {
		return false, nil
	}

	err = s.views.Save(ctx, &domain.PageView{
		PageName:  pageName,
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		return false, apperr.Internal("failed to record view", err)
	}
	return true, nil
}

func (s *PageViewService) Statistics(ctx context.Context) (*domain.ViewStatistics, error) {
	stats, err := s.views.Statistics(ctx, time.Now())
	if err != nil {
		return nil, apperr.Internal("failed to compute statistics", err)
	}
	return stats, nil
}
