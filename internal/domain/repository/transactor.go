package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs fn inside one database transaction.
// fn's error rolls the transaction back; a nil return commits it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
