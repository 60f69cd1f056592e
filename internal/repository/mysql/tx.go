package mysql

import (
	"context"

	"glory-event-api/internal/repository"

	"gorm.io/gorm"
)

type txKey struct{}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repository.TxManager {
	return &txManager{db: db}
}

// WithinTransaction opens a gorm transaction and threads it through the
// context; repository calls inside fn pick it up via dbFrom. gorm rolls
// back on any error or panic escaping fn, commits otherwise.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func dbFrom(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return base.WithContext(ctx)
}
