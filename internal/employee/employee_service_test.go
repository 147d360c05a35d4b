package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	employeeerrors "go-attendance/internal/employee/errors"
	"go-attendance/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, empl *Employee) error
	active     []Employee
	byCode     map[string]*Employee
	activeSet  map[string]bool
	setActives []string
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) { return f.active, nil }
func (f *fakeRepo) FindActive(ctx context.Context) ([]Employee, error) {
	return f.active, nil
}
func (f *fakeRepo) FindByCode(ctx context.Context, employeeCode string) (*Employee, error) {
	if e, ok := f.byCode[employeeCode]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (*Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) FindByCodes(ctx context.Context, employeeCodes []string) ([]Employee, error) {
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error { return nil }
func (f *fakeRepo) SetActive(ctx context.Context, employeeCode string, active bool) error {
	if f.activeSet != nil {
		if _, ok := f.activeSet[employeeCode]; !ok {
			return gorm.ErrRecordNotFound
		}
	}
	f.setActives = append(f.setActives, employeeCode)
	return nil
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		Phone:      "08123456789",
		Department: "Production",
		Position:   "Operator",
		Username:   "budi",
		Password:   "secret123",
		JoinDate:   "2024-01-15",
	}
}

func TestService_Create_GeneratesSequentialCodes(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved []Employee
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, empl *Employee) error {
		saved = append(saved, *empl)
		return nil
	}

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	first, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "EMP0001", first.EmployeeCode)

	req2 := validCreateRequest()
	req2.Email = "siti@example.com"
	req2.Username = "siti"
	mock.ExpectBegin()
	mock.ExpectCommit()
	second, err := svc.Create(context.Background(), req2)
	assert.NoError(t, err)
	assert.Equal(t, "EMP0002", second.EmployeeCode)

	// Password disimpan sebagai hash bcrypt, bukan plaintext
	assert.NotEqual(t, "secret123", saved[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved[0].Password), []byte("secret123")))
	assert.True(t, saved[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_WritesOutboxEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(db, &fakeRepo{}, &fakeCounter{}, outbox, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, "employee_created", outbox.created[0].EventType)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &payload))
	assert.Equal(t, "EMP0001", payload["employee_code"])
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, empl *Employee) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_username"}
	}

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employeeerrors.ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidJoinDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, nil)

	req := validCreateRequest()
	req.JoinDate = "15/01/2024"
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinDate)
}

func TestService_GetOptions_CachesInRedis(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	rdb, rmock := redismock.NewClientMock()
	repo := &fakeRepo{active: []Employee{
		{EmployeeCode: "EMP0001", FullName: "Budi Santoso", Department: "Production"},
	}}

	svc := NewService(db, repo, &fakeCounter{}, rdb)

	expected := []EmployeeOption{{EmployeeCode: "EMP0001", FullName: "Budi Santoso", Department: "Production"}}
	payload, _ := json.Marshal(expected)

	rmock.ExpectGet(EmployeeOptionsKey).RedisNil()
	rmock.ExpectSet(EmployeeOptionsKey, payload, 5*time.Minute).SetVal("OK")

	opts, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, opts)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestService_GetOptions_ServesFromCache(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	rdb, rmock := redismock.NewClientMock()
	// Repo kosong: jika cache dipakai, data tetap muncul
	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, rdb)

	cached := []EmployeeOption{{EmployeeCode: "EMP0007", FullName: "Cached", Department: "QC"}}
	payload, _ := json.Marshal(cached)
	rmock.ExpectGet(EmployeeOptionsKey).SetVal(string(payload))

	opts, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, opts)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestService_Deactivate_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{activeSet: map[string]bool{}}
	svc := NewService(db, repo, &fakeCounter{}, nil)

	err := svc.Deactivate(context.Background(), "EMP9999")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_DeactivateReactivate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{activeSet: map[string]bool{"EMP0001": true}}
	svc := NewService(db, repo, &fakeCounter{}, nil)

	assert.NoError(t, svc.Deactivate(context.Background(), "EMP0001"))
	assert.NoError(t, svc.Reactivate(context.Background(), "EMP0001"))
	assert.Equal(t, []string{"EMP0001", "EMP0001"}, repo.setActives)
}
