package services

import (
	"context"
	"errors"
	"testing"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPageViewService_TrackView(t *testing.T) {
	tests := []struct {
		name         string
		pageName     string
		setupMocks   func(*mocks.MockPageViewRepository, *mocks.MockLimiter)
		recorded     bool
		wantErr      bool
	}{
		{
			name:     "first view inside the window is recorded",
			pageName: "accueil",
			setupMocks: func(views *mocks.MockPageViewRepository, limiter *mocks.MockLimiter) {
				limiter.On("Allow", mock.Anything, "10.0.0.1", "accueil", DedupWindow).Return(true, nil)
				views.On("Save", mock.Anything, mock.AnythingOfType("*domain.PageView")).Return(nil)
			},
			recorded: true,
		},
		{
			name:     "repeat view inside the window is deduplicated",
			pageName: "accueil",
			setupMocks: func(views *mocks.MockPageViewRepository, limiter *mocks.MockLimiter) {
				limiter.On("Allow", mock.Anything, "10.0.0.1", "accueil", DedupWindow).Return(false, nil)
			},
		},
		{
			name:       "empty page name is rejected",
			pageName:   "",
			setupMocks: func(*mocks.MockPageViewRepository, *mocks.MockLimiter) {},
			wantErr:    true,
		},
		{
			name:     "throttle outage falls back to stored views and records",
			pageName: "accueil",
			setupMocks: func(views *mocks.MockPageViewRepository, limiter *mocks.MockLimiter) {
				limiter.On("Allow", mock.Anything, "10.0.0.1", "accueil", DedupWindow).Return(false, errors.New("redis down"))
				views.On("LastViewSince", mock.Anything, "10.0.0.1", "accueil", mock.Anything).Return(nil, nil)
				views.On("Save", mock.Anything, mock.AnythingOfType("*domain.PageView")).Return(nil)
			},
			recorded: true,
		},
		{
			name:     "throttle outage with a recent stored view deduplicates",
			pageName: "accueil",
			setupMocks: func(views *mocks.MockPageViewRepository, limiter *mocks.MockLimiter) {
				limiter.On("Allow", mock.Anything, "10.0.0.1", "accueil", DedupWindow).Return(false, errors.New("redis down"))
				views.On("LastViewSince", mock.Anything, "10.0.0.1", "accueil", mock.Anything).
					Return(&domain.PageView{PageName: "accueil", IPAddress: "10.0.0.1"}, nil)
			},
		},
		{
			name:     "storage failure is internal",
			pageName: "accueil",
			setupMocks: func(views *mocks.MockPageViewRepository, limiter *mocks.MockLimiter) {
				limiter.On("Allow", mock.Anything, "10.0.0.1", "accueil", DedupWindow).Return(true, nil)
				views.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := new(mocks.MockPageViewRepository)
			limiter := new(mocks.MockLimiter)
			tt.setupMocks(views, limiter)

			service := NewPageViewService(views, limiter, testLogger())
			recorded, err := service.TrackView(context.Background(), tt.pageName, "10.0.0.1", "test-agent")

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, recorded)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.recorded, recorded)
			}
			views.AssertExpectations(t)
			limiter.AssertExpectations(t)
		})
	}
}
