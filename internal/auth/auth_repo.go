package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	CreateAdmin(ctx context.Context, admin *Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*Admin, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAdmin(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) GetAdminByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	return &admin, err
}
