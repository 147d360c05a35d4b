package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/editlog"
	"go-attendance/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error)
	findByDateFn            func(ctx context.Context, date time.Time) ([]Attendance, error)
	findByEmployeeBetweenFn func(ctx context.Context, employeeCode string, start, end time.Time) ([]Attendance, error)
	findBetweenFn           func(ctx context.Context, start, end time.Time) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
	upsertPresentFn         func(ctx context.Context, a *Attendance) error
	findUnmarkedFn          func(ctx context.Context, date time.Time) ([]employee.Employee, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeCode, date)
}
func (f *fakeRepo) FindByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	return f.findByDateFn(ctx, date)
}
func (f *fakeRepo) FindByEmployeeBetween(ctx context.Context, employeeCode string, start, end time.Time) ([]Attendance, error) {
	return f.findByEmployeeBetweenFn(ctx, employeeCode, start, end)
}
func (f *fakeRepo) FindBetween(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	return f.findBetweenFn(ctx, start, end)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) UpsertPresent(ctx context.Context, a *Attendance) error {
	return f.upsertPresentFn(ctx, a)
}
func (f *fakeRepo) FindUnmarkedEmployees(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	return f.findUnmarkedFn(ctx, date)
}

type fakeEditLogRepo struct {
	created   []editlog.EditLog
	createErr error
}

func (f *fakeEditLogRepo) WithTx(tx *sql.Tx) editlog.Repository { return f }
func (f *fakeEditLogRepo) Create(ctx context.Context, log *editlog.EditLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *log)
	return nil
}
func (f *fakeEditLogRepo) FindAll(ctx context.Context, limit int) ([]editlog.EditLog, error) {
	return f.created, nil
}
func (f *fakeEditLogRepo) FindByEmployee(ctx context.Context, employeeCode string) ([]editlog.EditLog, error) {
	return f.created, nil
}

type fakeEmployeeRepo struct {
	byCode map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByCode(ctx context.Context, employeeCode string) (*employee.Employee, error) {
	if e, ok := f.byCode[employeeCode]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) FindByCodes(ctx context.Context, employeeCodes []string) ([]employee.Employee, error) {
	var res []employee.Employee
	for _, code := range employeeCodes {
		if e, ok := f.byCode[code]; ok {
			res = append(res, *e)
		}
	}
	return res, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) SetActive(ctx context.Context, employeeCode string, active bool) error {
	return nil
}

func knownEmployees(codes ...string) *fakeEmployeeRepo {
	byCode := make(map[string]*employee.Employee, len(codes))
	for _, code := range codes {
		byCode[code] = &employee.Employee{EmployeeCode: code, FullName: "Test " + code}
	}
	return &fakeEmployeeRepo{byCode: byCode}
}

func TestService_Mark(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	res, err := svc.Mark(context.Background(), "admin", MarkRequest{
		EmployeeCode: "EMP0001",
		Date:         "2024-03-15",
		Status:       StatusPresent,
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP0001", res.EmployeeCode)
	assert.Equal(t, StatusPresent, res.Status)
	assert.Equal(t, "admin", saved.MarkedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Mark_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
	}

	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Mark(context.Background(), "admin", MarkRequest{
		EmployeeCode: "EMP0001",
		Date:         "2024-03-15",
		Status:       StatusAbsent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Mark_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEditLogRepo{}, knownEmployees())

	_, err := svc.Mark(context.Background(), "admin", MarkRequest{
		EmployeeCode: "EMP9999",
		Date:         "2024-03-15",
		Status:       StatusPresent,
	})
	assert.Error(t, err)
}

func TestService_Mark_InvalidDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	_, err := svc.Mark(context.Background(), "admin", MarkRequest{
		EmployeeCode: "EMP0001",
		Date:         "15-03-2024",
		Status:       StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_Mark_FutureDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		t.Fatal("future-dated record must not be written")
		return nil
	}
	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	_, err := svc.Mark(context.Background(), "admin", MarkRequest{
		EmployeeCode: "EMP0001",
		Date:         tomorrow,
		Status:       StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrFutureDate)
}

func TestService_MarkBulk_PartialFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		if a.EmployeeCode == "EMP0002" {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
		}
		return nil
	}

	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees("EMP0001", "EMP0002", "EMP0003"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.MarkBulk(context.Background(), "admin", MarkBulkRequest{
		Date:          "2024-03-15",
		Status:        StatusPresent,
		EmployeeCodes: []string{"EMP0001", "EMP0002", "EMP0003"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Marked)
	assert.Equal(t, 1, res.Skipped)
	assert.False(t, res.Results[1].Marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Edit_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Edit(context.Background(), "admin", "EMP0001", "2024-03-15", EditRequest{
		Status: StatusPresent,
		Reason: "correction",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrRecordNotFound)
}

func TestService_Edit_BlankReason(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	_, err := svc.Edit(context.Background(), "admin", "EMP0001", "2024-03-15", EditRequest{
		Status: StatusPresent,
		Reason: "   ",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrReasonRequired)
}

func TestService_Edit_NoOpWritesNoLog(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
		return &Attendance{ID: uuid.New(), EmployeeCode: employeeCode, Status: StatusPresent}, nil
	}

	logRepo := &fakeEditLogRepo{}
	svc := NewService(db, repo, logRepo, knownEmployees("EMP0001"))

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Edit(context.Background(), "admin", "EMP0001", "2024-03-15", EditRequest{
		Status: StatusPresent,
		Reason: "no change",
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpEdit)
	assert.Empty(t, logRepo.created)
}

func TestService_Edit_AppendsEditLog(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeCode:   "EMP0001",
		AttendanceDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:         StatusAbsent,
		MarkedBy:       "admin",
	}
	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
		return row, nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }

	logRepo := &fakeEditLogRepo{}
	svc := NewService(db, repo, logRepo, knownEmployees("EMP0001"))

	mock.ExpectBegin()
	mock.ExpectCommit()
	res, err := svc.Edit(context.Background(), "supervisor", "EMP0001", "2024-03-15", EditRequest{
		Status: StatusPresent,
		Reason: "was on site visit",
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, res.Status)
	assert.Equal(t, "supervisor", *res.UpdatedBy)

	assert.Len(t, logRepo.created, 1)
	entry := logRepo.created[0]
	assert.Equal(t, StatusAbsent, entry.OldStatus)
	assert.Equal(t, StatusPresent, entry.NewStatus)
	assert.Equal(t, "was on site visit", entry.Reason)
	assert.Equal(t, "supervisor", entry.EditedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Edit_LogWriteFailureRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeCode:   "EMP0001",
		AttendanceDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:         StatusAbsent,
		MarkedBy:       "admin",
	}
	repo := &fakeRepo{}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeCode string, date time.Time) (*Attendance, error) {
		return row, nil
	}
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }

	logRepo := &fakeEditLogRepo{createErr: errors.New("log insert failed")}
	svc := NewService(db, repo, logRepo, knownEmployees("EMP0001"))

	// Status sudah terlanjur di-update; kegagalan tulis log harus rollback.
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Edit(context.Background(), "supervisor", "EMP0001", "2024-03-15", EditRequest{
		Status: StatusPresent,
		Reason: "was on site visit",
	})
	assert.Error(t, err)
	assert.Empty(t, logRepo.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByEmployee_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeEditLogRepo{}, knownEmployees("EMP0001"))

	_, err := svc.GetByEmployee(context.Background(), "EMP0001", "2024-03-31", "2024-03-01")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)
}

func TestService_ListUnmarked(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findUnmarkedFn = func(ctx context.Context, date time.Time) ([]employee.Employee, error) {
		return []employee.Employee{
			{EmployeeCode: "EMP0002", FullName: "Siti", Department: "QC"},
		}, nil
	}

	svc := NewService(db, repo, &fakeEditLogRepo{}, knownEmployees())

	res, err := svc.ListUnmarked(context.Background(), "2024-03-15")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "EMP0002", res[0].EmployeeCode)
}
