package services

import (
	"context"
	"time"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const defaultDeviceName = "web-admin"

type AuthService struct {
	admins repository.AdminRepository
	log    *logrus.Logger
}

func NewAuthService(admins repository.AdminRepository, log *logrus.Logger) *AuthService {
	return &AuthService{admins: admins, log: log}
}

// Login verifies credentials, revokes previous tokens for the device and
// issues a fresh opaque token.
func (s *AuthService) Login(ctx context.Context, email, password, deviceName, ip string) (*domain.Admin, string, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("failed to load admin", err)
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}
	if !admin.IsActive {
		return nil, "", apperr.Unauthorized("account is disabled")
	}

	if deviceName == "" {
		deviceName = defaultDeviceName
	}
	if err := s.admins.DeleteTokensByDevice(ctx, admin.ID, deviceName); err != nil {
		return nil, "", apperr.Internal("failed to revoke previous tokens", err)
	}

	token := uuid.NewString()
	err = s.admins.SaveToken(ctx, &domain.AdminToken{
		AdminID:    admin.ID,
		Token:      token,
		DeviceName: deviceName,
	})
	if err != nil {
		return nil, "", apperr.Internal("failed to issue token", err)
	}

	now := time.Now()
	if err := s.admins.RecordLogin(ctx, admin.ID, now, ip); err != nil {
		// Bookkeeping only; the login itself already succeeded.
		s.log.WithError(err).WithField("admin_id", admin.ID).Warn("failed to record login")
	}
	admin.LastLoginAt = &now
	admin.LastLoginIP = ip

	s.log.WithFields(logrus.Fields{"admin_id": admin.ID, "device": deviceName}).Info("admin logged in")
	return admin, token, nil
}

// Authenticate resolves a bearer token to its admin account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Admin, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing token")
	}
	t, err := s.admins.FindToken(ctx, token)
	if err != nil {
		return nil, apperr.Internal("failed to look up token", err)
	}
	if t == nil {
		return nil, apperr.Unauthorized("invalid token")
	}
	admin, err := s.admins.FindByID(ctx, t.AdminID)
	if err != nil {
		return nil, apperr.Internal("failed to load admin", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, apperr.Unauthorized("invalid token")
	}
	return admin, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.admins.DeleteToken(ctx, token); err != nil {
		return apperr.Internal("failed to revoke token", err)
	}
	return nil
}
