package services

import (
	"context"
	"testing"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactService_CreateContact(t *testing.T) {
	t.Run("valid message is stored", func(t *testing.T) {
		contacts := new(mocks.MockContactRepository)
		contacts.On("Save", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)

		service := NewContactService(contacts, testLogger())
		c, err := service.CreateContact(context.Background(), CreateContactInput{
			Name:    "Jane Doe",
			Email:   "jane@x.com",
			Subject: "Devis mariage",
			Message: "Bonjour, je souhaite un devis.",
			Service: "decoration",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Devis mariage", c.Subject)
		assert.False(t, c.IsRead)
		contacts.AssertExpectations(t)
	})

	t.Run("missing fields fail validation before storage", func(t *testing.T) {
		contacts := new(mocks.MockContactRepository)
		service := NewContactService(contacts, testLogger())

		_, err := service.CreateContact(context.Background(), CreateContactInput{Email: "not-an-email"})

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		appErr := err.(*apperr.Error)
		assert.Contains(t, appErr.Fields, "name")
		assert.Contains(t, appErr.Fields, "email")
		assert.Contains(t, appErr.Fields, "subject")
		assert.Contains(t, appErr.Fields, "message")
		contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestContactService_MarkRead(t *testing.T) {
	t.Run("existing contact is toggled", func(t *testing.T) {
		contacts := new(mocks.MockContactRepository)
		contacts.On("SetRead", mock.Anything, uint64(3), true).Return(&domain.Contact{ID: 3, IsRead: true}, nil)

		service := NewContactService(contacts, testLogger())
		c, err := service.MarkRead(context.Background(), 3, true)

		assert.NoError(t, err)
		assert.True(t, c.IsRead)
	})

	t.Run("missing contact is not found", func(t *testing.T) {
		contacts := new(mocks.MockContactRepository)
		contacts.On("SetRead", mock.Anything, uint64(99), true).Return(nil, nil)

		service := NewContactService(contacts, testLogger())
		_, err := service.MarkRead(context.Background(), 99, true)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
