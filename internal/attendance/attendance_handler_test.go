package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markFn          func(ctx context.Context, actor string, req attendance.MarkRequest) (attendance.AttendanceResponse, error)
	markBulkFn      func(ctx context.Context, actor string, req attendance.MarkBulkRequest) (attendance.BulkMarkResponse, error)
	listUnmarkedFn  func(ctx context.Context, date string) ([]attendance.UnmarkedEmployeeResponse, error)
	editFn          func(ctx context.Context, actor, employeeCode, date string, req attendance.EditRequest) (attendance.AttendanceResponse, error)
	getByDateFn     func(ctx context.Context, date string) ([]attendance.AttendanceResponse, error)
	getByEmployeeFn func(ctx context.Context, employeeCode, start, end string) ([]attendance.AttendanceResponse, error)
	getByMonthFn    func(ctx context.Context, month string) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) Mark(ctx context.Context, actor string, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	return f.markFn(ctx, actor, req)
}
func (f *fakeService) MarkBulk(ctx context.Context, actor string, req attendance.MarkBulkRequest) (attendance.BulkMarkResponse, error) {
	return f.markBulkFn(ctx, actor, req)
}
func (f *fakeService) ListUnmarked(ctx context.Context, date string) ([]attendance.UnmarkedEmployeeResponse, error) {
	return f.listUnmarkedFn(ctx, date)
}
func (f *fakeService) Edit(ctx context.Context, actor, employeeCode, date string, req attendance.EditRequest) (attendance.AttendanceResponse, error) {
	return f.editFn(ctx, actor, employeeCode, date, req)
}
func (f *fakeService) GetByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	return f.getByDateFn(ctx, date)
}
func (f *fakeService) GetByEmployee(ctx context.Context, employeeCode, start, end string) ([]attendance.AttendanceResponse, error) {
	return f.getByEmployeeFn(ctx, employeeCode, start, end)
}
func (f *fakeService) GetByMonth(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	return f.getByMonthFn(ctx, month)
}

func TestHandler_Mark(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markFn: func(ctx context.Context, actor string, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "admin", actor)
			assert.Equal(t, "EMP0001", req.EmployeeCode)
			return attendance.AttendanceResponse{EmployeeCode: req.EmployeeCode, Status: req.Status}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("username_validated", "admin")
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
		strings.NewReader(`{"employee_code":"EMP0001","date":"2024-03-15","status":"PRESENT"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Mark_DuplicateConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markFn: func(ctx context.Context, actor string, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrDuplicateRecord
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("username_validated", "admin")
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
		strings.NewReader(`{"employee_code":"EMP0001","date":"2024-03-15","status":"PRESENT"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestHandler_Mark_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
		strings.NewReader(`{"employee_code":"EMP0001","date":"2024-03-15","status":"MAYBE"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByEmployee_OwnRecordsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotFrom, gotTo string
	svc := &fakeService{
		getByEmployeeFn: func(ctx context.Context, employeeCode, from, to string) ([]attendance.AttendanceResponse, error) {
			gotFrom, gotTo = from, to
			return []attendance.AttendanceResponse{{EmployeeCode: employeeCode}}, nil
		},
	}
	h := attendance.NewHandler(svc)

	// Karyawan membuka record orang lain
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("role", rbac.RoleEmployee)
	c.Set("employee_code", "EMP0001")
	c.Params = gin.Params{{Key: "employee_code", Value: "EMP0002"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/employee/EMP0002", nil)
	h.GetByEmployee(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Record sendiri
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("role", rbac.RoleEmployee)
	c2.Set("employee_code", "EMP0001")
	c2.Params = gin.Params{{Key: "employee_code", Value: "EMP0001"}}
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendance/employee/EMP0001?from=2024-03-01&to=2024-03-31", nil)
	h.GetByEmployee(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "2024-03-01", gotFrom)
	assert.Equal(t, "2024-03-31", gotTo)
}
