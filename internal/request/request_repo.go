package request

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *AttendanceRequest) error
	FindByID(ctx context.Context, id string) (*AttendanceRequest, error)
	FindActiveByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*AttendanceRequest, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]AttendanceRequest, error)
	FindByStatus(ctx context.Context, statuses []string) ([]AttendanceRequest, error)
	Update(ctx context.Context, req *AttendanceRequest) error
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

func (r *repository) Create(ctx context.Context, req *AttendanceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AttendanceRequest, error) {
	var req AttendanceRequest
	err := r.db.WithContext(ctx).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindActiveByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*AttendanceRequest, error) {
	var req AttendanceRequest
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Where("request_date = ?", date.Format("2006-01-02")).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		First(&req).Error
	return &req, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeCode string) ([]AttendanceRequest, error) {
	var rows []AttendanceRequest
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, statuses []string) ([]AttendanceRequest, error) {
	var rows []AttendanceRequest
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, req *AttendanceRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
