package services

import (
	"errors"

	"glory-event-api/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
