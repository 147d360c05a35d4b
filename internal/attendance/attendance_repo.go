package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error)
	FindByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	FindByEmployeeBetween(ctx context.Context, employeeCode string, start, end time.Time) ([]Attendance, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	UpsertPresent(ctx context.Context, a *Attendance) error
	FindUnmarkedEmployees(ctx context.Context, date time.Time) ([]employee.Employee, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Order("employee_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeBetween(ctx context.Context, employeeCode string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBetween(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_date ASC, employee_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// UpsertPresent menulis status PRESENT secara atomik: insert baru atau
// update baris yang sudah ada untuk (employee_code, attendance_date).
func (r *repository) UpsertPresent(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_code"}, {Name: "attendance_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     a.Status,
				"updated_by": a.UpdatedBy,
				"updated_at": a.UpdatedAt,
			}),
		}).
		Create(a).Error
}

func (r *repository) FindUnmarkedEmployees(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	var empls []employee.Employee
	sub := r.db.
		Model(&Attendance{}).
		Select("employee_code").
		Where("attendance_date = ?", date.Format("2006-01-02"))
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("employee_code NOT IN (?)", sub).
		Order("employee_code ASC").
		Find(&empls).Error
	return empls, err
}
