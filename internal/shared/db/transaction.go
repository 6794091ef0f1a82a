// Package db carries the gorm transaction through context so repositories
// called inside a unit of work share one transaction without knowing about it.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager opens gorm transactions and threads them through context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a single transaction. Repositories invoked
// with the derived context pick the transaction up via GetTxFromContext, so a
// returned error rolls back every write made inside fn.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetTxFromContext returns the in-flight transaction when ctx carries one,
// falling back to defaultDB for standalone operations.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
