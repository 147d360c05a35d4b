package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	requesterrors "go-attendance/internal/request/errors"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const approvalNote = "Approved from employee request"

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeCode string, req SubmitRequest) (RequestResponse, error)
	Resolve(ctx context.Context, resolver, requestID string, req ResolveRequest) (RequestResponse, error)
	GetMine(ctx context.Context, employeeCode string) ([]RequestResponse, error)
	GetPending(ctx context.Context) ([]RequestResponse, error)
	GetResolved(ctx context.Context) ([]RequestResponse, error)
}

type service struct {
	db             *sql.DB
	repo           Repository
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, attendanceRepo, employeeRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		outbox:         outboxRepo,
		logger:         l,
	}
}

// Submit mengajukan koreksi kehadiran untuk tanggal yang sudah lewat.
// Pre-check duplikat dan ledger hanya fast-path; keputusan akhir tetap
// pada partial unique index saat insert.
func (s *service) Submit(ctx context.Context, employeeCode string, req SubmitRequest) (RequestResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return RequestResponse{}, requesterrors.ErrEmptyJustification
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidDate
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !date.Before(today) {
		return RequestResponse{}, requesterrors.ErrRequestDateNotPast
	}

	existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, employeeCode, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RequestResponse{}, err
	}
	if err == nil && existing.Status == attendance.StatusPresent {
		return RequestResponse{}, requesterrors.ErrAlreadyPresent
	}

	if _, err := s.repo.FindActiveByEmployeeAndDate(ctx, employeeCode, date); err == nil {
		return RequestResponse{}, requesterrors.ErrDuplicateActiveRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RequestResponse{}, err
	}

	row := &AttendanceRequest{
		ID:           uuid.New(),
		EmployeeCode: employeeCode,
		RequestDate:  date,
		Message:      req.Message,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("submit request failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_code", employeeCode),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return RequestResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attendance request submitted",
		zap.String("employee_code", employeeCode),
		zap.String("date", req.Date),
	)
	return mapToResponse(*row), nil
}

// Resolve memutuskan request PENDING. APPROVE juga menulis PRESENT ke
// ledger (upsert) dalam transaksi yang sama; REJECT tidak menyentuh
// ledger sama sekali.
func (s *service) Resolve(ctx context.Context, resolver, requestID string, req ResolveRequest) (RequestResponse, error) {
	if req.Decision != "APPROVE" && req.Decision != "REJECT" {
		return RequestResponse{}, requesterrors.ErrInvalidDecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if row.Status != StatusPending {
		return RequestResponse{}, requesterrors.ErrAlreadyResolved
	}

	now := time.Now().UTC()
	row.ResolvedBy = &resolver
	row.ResolvedAt = &now

	if req.Decision == "APPROVE" {
		row.Status = StatusApproved

		note := approvalNote
		ledgerRow := &attendance.Attendance{
			ID:             uuid.New(),
			EmployeeCode:   row.EmployeeCode,
			AttendanceDate: row.RequestDate,
			Status:         attendance.StatusPresent,
			MarkedBy:       resolver,
			Note:           &note,
			UpdatedBy:      &resolver,
			UpdatedAt:      &now,
		}
		if err := s.attendanceRepo.WithTx(tx).UpsertPresent(ctx, ledgerRow); err != nil {
			return RequestResponse{}, err
		}
	} else {
		row.Status = StatusRejected
	}

	if err := qtx.Update(ctx, row); err != nil {
		return RequestResponse{}, err
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.RequestResolvedEvent{
			EventType:    "request_resolved",
			RequestID:    row.ID.String(),
			EmployeeCode: row.EmployeeCode,
			Date:         row.RequestDate.Format("2006-01-02"),
			Decision:     row.Status,
			ResolvedBy:   resolver,
			OccurredAt:   now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return RequestResponse{}, err
		}
		outboxEvent := kafka.NewPendingEvent("attendance_request", row.ID.String(), "request_resolved", events.RequestResolvedTopic, rid, payload)
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return RequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("attendance request resolved",
		zap.String("id", row.ID.String()),
		zap.String("employee_code", row.EmployeeCode),
		zap.String("decision", row.Status),
		zap.String("resolved_by", resolver),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetMine(ctx context.Context, employeeCode string) ([]RequestResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	res := make([]RequestResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetPending(ctx context.Context) ([]RequestResponse, error) {
	return s.listWithNames(ctx, []string{StatusPending})
}

func (s *service) GetResolved(ctx context.Context) ([]RequestResponse, error) {
	return s.listWithNames(ctx, []string{StatusApproved, StatusRejected})
}

func (s *service) listWithNames(ctx context.Context, statuses []string) ([]RequestResponse, error) {
	rows, err := s.repo.FindByStatus(ctx, statuses)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if !seen[r.EmployeeCode] {
			seen[r.EmployeeCode] = true
			codes = append(codes, r.EmployeeCode)
		}
	}

	empls, err := s.employeeRepo.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(empls))
	for _, e := range empls {
		names[e.EmployeeCode] = e.FullName
	}

	res := make([]RequestResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
		res[i].FullName = names[r.EmployeeCode]
	}
	return res, nil
}

func mapToResponse(r AttendanceRequest) RequestResponse {
	resp := RequestResponse{
		ID:           r.ID.String(),
		EmployeeCode: r.EmployeeCode,
		Date:         r.RequestDate.Format("2006-01-02"),
		Message:      r.Message,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		ResolvedBy:   r.ResolvedBy,
	}
	if r.ResolvedAt != nil {
		v := r.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &v
	}
	return resp
}
