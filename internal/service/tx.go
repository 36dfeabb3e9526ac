package service

import (
	"context"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction. With a nil db (in-memory
// repositories) fn runs directly and receives a nil tx handle.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
