package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/editlog"
	"go-attendance/internal/employee"
	employeeerrors "go-attendance/internal/employee/errors"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, actor string, req MarkRequest) (AttendanceResponse, error)
	MarkBulk(ctx context.Context, actor string, req MarkBulkRequest) (BulkMarkResponse, error)
	ListUnmarked(ctx context.Context, date string) ([]UnmarkedEmployeeResponse, error)
	Edit(ctx context.Context, actor, employeeCode, date string, req EditRequest) (AttendanceResponse, error)
	GetByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeCode, start, end string) ([]AttendanceResponse, error)
	GetByMonth(ctx context.Context, month string) ([]AttendanceResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	editLogRepo  editlog.Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	editLogRepo editlog.Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		editLogRepo:  editLogRepo,
		employeeRepo: employeeRepo,
		logger:       l,
	}
}

// Mark menulis satu baris kehadiran. Tidak ada pre-check duplikat:
// unique index yang memutuskan, bentrok dipetakan jadi conflict.
func (s *service) Mark(ctx context.Context, actor string, req MarkRequest) (AttendanceResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return AttendanceResponse{}, attendanceerrors.ErrFutureDate
	}

	if _, err := s.employeeRepo.FindByCode(ctx, req.EmployeeCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeCode:   req.EmployeeCode,
		AttendanceDate: date,
		Status:         req.Status,
		MarkedBy:       actor,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Warn("mark attendance failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_code", req.EmployeeCode),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance marked",
		zap.String("employee_code", req.EmployeeCode),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
		zap.String("marked_by", actor),
	)
	return mapToResponse(*row), nil
}

// MarkBulk memproses tiap karyawan dalam transaksi terpisah.
// Satu duplikat tidak menggagalkan sisanya.
func (s *service) MarkBulk(ctx context.Context, actor string, req MarkBulkRequest) (BulkMarkResponse, error) {
	if _, err := parseDate(req.Date); err != nil {
		return BulkMarkResponse{}, err
	}
	if !ValidStatus(req.Status) {
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidStatus
	}

	res := BulkMarkResponse{
		Date:    req.Date,
		Results: make([]BulkMarkItemResult, 0, len(req.EmployeeCodes)),
	}

	for _, code := range req.EmployeeCodes {
		_, err := s.Mark(ctx, actor, MarkRequest{
			EmployeeCode: code,
			Date:         req.Date,
			Status:       req.Status,
		})
		item := BulkMarkItemResult{EmployeeCode: code, Marked: err == nil}
		if err != nil {
			item.Error = err.Error()
			res.Skipped++
		} else {
			res.Marked++
		}
		res.Results = append(res.Results, item)
	}

	return res, nil
}

func (s *service) ListUnmarked(ctx context.Context, dateStr string) ([]UnmarkedEmployeeResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	empls, err := s.repo.FindUnmarkedEmployees(ctx, date)
	if err != nil {
		return nil, err
	}

	res := make([]UnmarkedEmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = UnmarkedEmployeeResponse{
			EmployeeCode: e.EmployeeCode,
			FullName:     e.FullName,
			Department:   e.Department,
		}
	}
	return res, nil
}

// Edit mengubah status record yang sudah ada. Alasan wajib diisi.
// Edit no-op ditolak tanpa menulis log. Perubahan nyata menulis record
// dan audit log dalam satu transaksi.
func (s *service) Edit(ctx context.Context, actor, employeeCode, dateStr string, req EditRequest) (AttendanceResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	if strings.TrimSpace(req.Reason) == "" {
		return AttendanceResponse{}, attendanceerrors.ErrReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeCode, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrRecordNotFound
		}
		return AttendanceResponse{}, err
	}

	if row.Status == req.Status {
		return AttendanceResponse{}, attendanceerrors.ErrNoOpEdit
	}

	oldStatus := row.Status
	now := time.Now().UTC()
	row.Status = req.Status
	row.UpdatedBy = &actor
	row.UpdatedAt = &now

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	logEntry := &editlog.EditLog{
		ID:             uuid.New(),
		EmployeeCode:   employeeCode,
		AttendanceDate: date,
		OldStatus:      oldStatus,
		NewStatus:      req.Status,
		Reason:         req.Reason,
		EditedBy:       actor,
		EditedAt:       now,
	}
	if err := s.editLogRepo.WithTx(tx).Create(ctx, logEntry); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance edited",
		zap.String("employee_code", employeeCode),
		zap.String("date", dateStr),
		zap.String("old_status", oldStatus),
		zap.String("new_status", req.Status),
		zap.String("edited_by", actor),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetByDate(ctx context.Context, dateStr string) ([]AttendanceResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.mapWithNames(ctx, rows)
}

func (s *service) GetByEmployee(ctx context.Context, employeeCode, startStr, endStr string) ([]AttendanceResponse, error) {
	start, err := parseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, attendanceerrors.ErrInvalidRange
	}

	rows, err := s.repo.FindByEmployeeBetween(ctx, employeeCode, start, end)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByMonth(ctx context.Context, month string) ([]AttendanceResponse, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	end := start.AddDate(0, 1, -1)

	rows, err := s.repo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return s.mapWithNames(ctx, rows)
}

func (s *service) mapWithNames(ctx context.Context, rows []Attendance) ([]AttendanceResponse, error) {
	codes := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if !seen[r.EmployeeCode] {
			seen[r.EmployeeCode] = true
			codes = append(codes, r.EmployeeCode)
		}
	}

	names := make(map[string]string, len(codes))
	empls, err := s.employeeRepo.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	for _, e := range empls {
		names[e.EmployeeCode] = e.FullName
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
		res[i].FullName = names[r.EmployeeCode]
	}
	return res, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return date, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID.String(),
		EmployeeCode: a.EmployeeCode,
		Date:         a.AttendanceDate.Format("2006-01-02"),
		Status:       a.Status,
		MarkedBy:     a.MarkedBy,
		Note:         a.Note,
		UpdatedBy:    a.UpdatedBy,
	}
	if a.UpdatedAt != nil {
		v := a.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
