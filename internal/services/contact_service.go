package services

import (
	"context"
	"net/mail"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Service string
}

type ContactService struct {
	contacts repository.ContactRepository
	log      *logrus.Logger
}

func NewContactService(contacts repository.ContactRepository, log *logrus.Logger) *ContactService {
	return &ContactService{contacts: contacts, log: log}
}

func validateCreateContact(in CreateContactInput) apperr.FieldErrors {
	fields := apperr.FieldErrors{}
	if in.Name == "" {
		fields.Add("name", "name is required")
	} else if len(in.Name) > 255 {
		fields.Add("name", "name must not exceed 255 characters")
	}
	if in.Email == "" {
		fields.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		fields.Add("email", "email must be a valid email address")
	}
	if len(in.Phone) > 50 {
		fields.Add("phone", "phone must not exceed 50 characters")
	}
	if in.Subject == "" {
		fields.Add("subject", "subject is required")
	} else if len(in.Subject) > 255 {
		fields.Add("subject", "subject must not exceed 255 characters")
	}
	if in.Message == "" {
		fields.Add("message", "message is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *ContactService) CreateContact(ctx context.Context, in CreateContactInput) (*domain.Contact, error) {
	if fields := validateCreateContact(in); fields != nil {
		return nil, apperr.Validation("validation failed", fields)
	}

	c := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Service: in.Service,
	}
	if err := s.contacts.Save(ctx, c); err != nil {
		return nil, apperr.Internal("failed to save contact", err)
	}
	s.log.WithField("contact_id", c.ID).Info("contact message received")
	return c, nil
}

func (s *ContactService) RecentContacts(ctx context.Context, limit int) ([]domain.Contact, error) {
	out, err := s.contacts.FindRecent(ctx, limit)
	if err != nil {
		return nil, apperr.Internal("failed to list contacts", err)
	}
	return out, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id uint64, read bool) (*domain.Contact, error) {
	c, err := s.contacts.SetRead(ctx, id, read)
	if err != nil {
		return nil, apperr.Internal("failed to update contact", err)
	}
	if c == nil {
		return nil, apperr.NotFound("contact not found")
	}
	return c, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id uint64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperr.NotFound("contact not found")
		}
		return apperr.Internal("failed to delete contact", err)
	}
	return nil
}
