package editlog

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=editlog_repo.go -destination=mock/editlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *EditLog) error
	FindAll(ctx context.Context, limit int) ([]EditLog, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]EditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang operasinya berjalan di dalam tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, log *EditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]EditLog, error) {
	var rows []EditLog
	q := r.db.WithContext(ctx).Order("edited_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeCode string) ([]EditLog, error) {
	var rows []EditLog
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Order("edited_at DESC").
		Find(&rows).Error
	return rows, err
}
