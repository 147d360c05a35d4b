package report

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	employeeerrors "go-attendance/internal/employee/errors"
	reporterrors "go-attendance/internal/report/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const unknownBucket = "Unknown"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	EmployeeSummary(ctx context.Context, employeeCode, from, to string) (EmployeeSummaryResponse, error)
	DepartmentAnalytics(ctx context.Context, from, to string) (DepartmentAnalyticsResponse, error)
	MonthlyReport(ctx context.Context, month string) (MonthlyReportResponse, error)
}

type service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	logger         *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         l,
	}
}

// computeStats: rate = present/total*100, dibulatkan 2 desimal.
// Total nol berarti rate nol, bukan pembagian nol.
func computeStats(rows []attendance.Attendance) Stats {
	s := Stats{TotalDays: len(rows)}
	for _, r := range rows {
		if r.Status == attendance.StatusPresent {
			s.PresentDays++
		} else {
			s.AbsentDays++
		}
	}
	if s.TotalDays > 0 {
		rate := float64(s.PresentDays) / float64(s.TotalDays) * 100
		s.AttendanceRate = math.Round(rate*100) / 100
	}
	return s
}

func (s *service) EmployeeSummary(ctx context.Context, employeeCode, fromStr, toStr string) (EmployeeSummaryResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	empl, err := s.employeeRepo.FindByCode(ctx, employeeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeSummaryResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeSummaryResponse{}, err
	}

	rows, err := s.attendanceRepo.FindByEmployeeBetween(ctx, employeeCode, from, to)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	records := make([]RecordEntry, len(rows))
	for i, r := range rows {
		records[i] = RecordEntry{
			Date:     r.AttendanceDate.Format("2006-01-02"),
			Status:   r.Status,
			MarkedBy: r.MarkedBy,
		}
	}

	return EmployeeSummaryResponse{
		EmployeeCode: employeeCode,
		FullName:     empl.FullName,
		Department:   empl.Department,
		From:         fromStr,
		To:           toStr,
		Stats:        computeStats(rows),
		Records:      records,
	}, nil
}

// DepartmentAnalytics mengelompokkan record per departemen. Record yang
// karyawannya tidak ditemukan atau sudah nonaktif masuk bucket "Unknown",
// tetap dihitung.
func (s *service) DepartmentAnalytics(ctx context.Context, fromStr, toStr string) (DepartmentAnalyticsResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return DepartmentAnalyticsResponse{}, err
	}

	rows, err := s.attendanceRepo.FindBetween(ctx, from, to)
	if err != nil {
		return DepartmentAnalyticsResponse{}, err
	}

	departments, err := s.departmentIndex(ctx, rows)
	if err != nil {
		return DepartmentAnalyticsResponse{}, err
	}

	grouped := make(map[string][]attendance.Attendance)
	deptEmployees := make(map[string]map[string]bool)
	for _, r := range rows {
		dept, ok := departments[r.EmployeeCode]
		if !ok || dept == "" {
			dept = unknownBucket
		}
		grouped[dept] = append(grouped[dept], r)
		if deptEmployees[dept] == nil {
			deptEmployees[dept] = make(map[string]bool)
		}
		deptEmployees[dept][r.EmployeeCode] = true
	}

	names := make([]string, 0, len(grouped))
	for dept := range grouped {
		names = append(names, dept)
	}
	sort.Strings(names)

	res := DepartmentAnalyticsResponse{
		From:        fromStr,
		To:          toStr,
		Departments: make([]DepartmentStats, 0, len(names)),
	}
	for _, dept := range names {
		res.Departments = append(res.Departments, DepartmentStats{
			Department: dept,
			Employees:  len(deptEmployees[dept]),
			Stats:      computeStats(grouped[dept]),
		})
	}
	return res, nil
}

func (s *service) MonthlyReport(ctx context.Context, month string) (MonthlyReportResponse, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthlyReportResponse{}, reporterrors.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)

	rows, err := s.attendanceRepo.FindBetween(ctx, start, end)
	if err != nil {
		return MonthlyReportResponse{}, err
	}

	byEmployee := make(map[string][]attendance.Attendance)
	for _, r := range rows {
		byEmployee[r.EmployeeCode] = append(byEmployee[r.EmployeeCode], r)
	}

	codes := make([]string, 0, len(byEmployee))
	for code := range byEmployee {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	empls, err := s.employeeRepo.FindByCodes(ctx, codes)
	if err != nil {
		return MonthlyReportResponse{}, err
	}
	index := make(map[string]employee.Employee, len(empls))
	for _, e := range empls {
		if !e.IsActive {
			continue
		}
		index[e.EmployeeCode] = e
	}

	res := MonthlyReportResponse{
		Month:     month,
		Employees: make([]MonthlyEmployeeRow, 0, len(codes)),
		Overall:   computeStats(rows),
	}
	for _, code := range codes {
		row := MonthlyEmployeeRow{
			EmployeeCode: code,
			FullName:     unknownBucket,
			Department:   unknownBucket,
			Stats:        computeStats(byEmployee[code]),
		}
		if e, ok := index[code]; ok {
			row.FullName = e.FullName
			row.Department = e.Department
		}
		res.Employees = append(res.Employees, row)
	}
	return res, nil
}

func (s *service) departmentIndex(ctx context.Context, rows []attendance.Attendance) (map[string]string, error) {
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
	// Karyawan nonaktif diperlakukan sama dengan yang hilang: record-nya
	// masuk bucket Unknown.
	index := make(map[string]string, len(empls))
	for _, e := range empls {
		if !e.IsActive {
			continue
		}
		index[e.EmployeeCode] = e.Department
	}
	return index, nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDate
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidRange
	}
	return from, to, nil
}
