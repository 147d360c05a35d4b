package employee

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	FindByCode(ctx context.Context, employeeCode string) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	FindByCodes(ctx context.Context, employeeCodes []string) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SetActive(ctx context.Context, employeeCode string, active bool) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("employee_code ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByCode(ctx context.Context, employeeCode string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_code = ?", employeeCode).Error
	return &empl, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "username = ?", username).Error
	return &empl, err
}

func (r *repository) FindByCodes(ctx context.Context, employeeCodes []string) ([]Employee, error) {
	var empls []Employee
	if len(employeeCodes) == 0 {
		return empls, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_code IN ?", employeeCodes).
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) SetActive(ctx context.Context, employeeCode string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_code = ?", employeeCode).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
