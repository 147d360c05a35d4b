package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/request"
	requesterrors "go-attendance/internal/request/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	submitFn      func(ctx context.Context, employeeCode string, req request.SubmitRequest) (request.RequestResponse, error)
	resolveFn     func(ctx context.Context, resolver, requestID string, req request.ResolveRequest) (request.RequestResponse, error)
	getMineFn     func(ctx context.Context, employeeCode string) ([]request.RequestResponse, error)
	getPendingFn  func(ctx context.Context) ([]request.RequestResponse, error)
	getResolvedFn func(ctx context.Context) ([]request.RequestResponse, error)
}

func (f *fakeService) Submit(ctx context.Context, employeeCode string, req request.SubmitRequest) (request.RequestResponse, error) {
	return f.submitFn(ctx, employeeCode, req)
}
func (f *fakeService) Resolve(ctx context.Context, resolver, requestID string, req request.ResolveRequest) (request.RequestResponse, error) {
	return f.resolveFn(ctx, resolver, requestID, req)
}
func (f *fakeService) GetMine(ctx context.Context, employeeCode string) ([]request.RequestResponse, error) {
	return f.getMineFn(ctx, employeeCode)
}
func (f *fakeService) GetPending(ctx context.Context) ([]request.RequestResponse, error) {
	return f.getPendingFn(ctx)
}
func (f *fakeService) GetResolved(ctx context.Context) ([]request.RequestResponse, error) {
	return f.getResolvedFn(ctx)
}

func TestHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitFn: func(ctx context.Context, employeeCode string, req request.SubmitRequest) (request.RequestResponse, error) {
			assert.Equal(t, "EMP0001", employeeCode)
			return request.RequestResponse{EmployeeCode: employeeCode, Status: request.StatusPending}, nil
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_code", "EMP0001")
	c.Request = httptest.NewRequest(http.MethodPost, "/requests",
		strings.NewReader(`{"date":"2024-03-15","message":"was at client site"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Submit_MissingEmployeeClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := request.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/requests",
		strings.NewReader(`{"date":"2024-03-15","message":"hello"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Submit(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Resolve_AlreadyResolved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		resolveFn: func(ctx context.Context, resolver, requestID string, req request.ResolveRequest) (request.RequestResponse, error) {
			return request.RequestResponse{}, requesterrors.ErrAlreadyResolved
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("username_validated", "admin")
	c.Params = gin.Params{{Key: "id", Value: "some-id"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/requests/some-id/resolve",
		strings.NewReader(`{"decision":"APPROVE"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Resolve(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}
