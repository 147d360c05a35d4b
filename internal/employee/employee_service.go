package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-attendance/internal/employee/errors"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByCode(ctx context.Context, employeeCode string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeCode string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, employeeCode string) error
	Reactivate(ctx context.Context, employeeCode string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
		zap.String("department", req.Department),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		s.logger.Warn("create employee invalid join_date",
			zap.String("join_date", req.JoinDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	employeeCode := fmt.Sprintf("EMP%04d", nextVal)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		EmployeeCode: employeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		Username:     req.Username,
		Password:     string(hashed),
		JoinDate:     joinDate,
		IsActive:     true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			RequestID:    rid,
			EmployeeCode: employeeCode,
			Department:   req.Department,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxEvent := kafka.NewPendingEvent("employee", empl.ID.String(), "employee_created", events.EmployeeCreatedTopic, rid, payload)
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("create employee outbox failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_code", employeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

// GetOptions mengembalikan daftar karyawan aktif untuk form marking.
// Di-cache di Redis, singleflight mencegah stampede saat cache kosong.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var opts []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			opts[i] = EmployeeOption{
				EmployeeCode: e.EmployeeCode,
				FullName:     e.FullName,
				Department:   e.Department,
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(opts); err == nil {
				_ = s.rdb.Set(ctx, EmployeeOptionsKey, payload, 5*time.Minute).Err()
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) GetByCode(ctx context.Context, employeeCode string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, employeeCode string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Department = req.Department
	empl.Position = req.Position

	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.Password = string(hashed)
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_code", employeeCode),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_code", employeeCode))
	return mapToResponse(*empl), nil
}

func (s *service) Deactivate(ctx context.Context, employeeCode string) error {
	return s.setActive(ctx, employeeCode, false)
}

func (s *service) Reactivate(ctx context.Context, employeeCode string) error {
	return s.setActive(ctx, employeeCode, true)
}

func (s *service) setActive(ctx context.Context, employeeCode string, active bool) error {
	if err := s.repo.SetActive(ctx, employeeCode, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("employee active flag changed",
		zap.String("employee_code", employeeCode),
		zap.Bool("is_active", active),
	)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Position:     e.Position,
		Username:     e.Username,
		JoinDate:     e.JoinDate.Format("2006-01-02"),
		IsActive:     e.IsActive,
	}
}
