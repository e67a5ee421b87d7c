package repository

import (
	"context"

	"doctor-verification/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
}
