package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/employee"
	"go-attendance/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, username, role string) (*AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	switch req.UserType {
	case rbac.RoleAdmin:
		return s.loginAdmin(ctx, req.Username, req.Password)
	case rbac.RoleEmployee:
		return s.loginEmployee(ctx, req.Username, req.Password)
	default:
		return "", AuthResponse{}, autherrors.ErrInvalidUserType
	}
}

func (s *service) loginAdmin(ctx context.Context, username, password string) (string, AuthResponse, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("admin login failed", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin.Username, rbac.RoleAdmin, "", 24*time.Hour)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin login success", zap.String("username", username))
	return token, AuthResponse{
		Username: admin.Username,
		FullName: admin.FullName,
		Role:     rbac.RoleAdmin,
	}, nil
}

func (s *service) loginEmployee(ctx context.Context, username, password string) (string, AuthResponse, error) {
	empl, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("employee login failed", zap.String("username", username))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !empl.IsActive {
		return "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	token, err := s.generateToken(empl.Username, rbac.RoleEmployee, empl.EmployeeCode, 24*time.Hour)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("employee login success",
		zap.String("username", username),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return token, AuthResponse{
		Username:     empl.Username,
		FullName:     empl.FullName,
		Role:         rbac.RoleEmployee,
		EmployeeCode: empl.EmployeeCode,
	}, nil
}

func (s *service) GetMe(ctx context.Context, username, role string) (*AuthResponse, error) {
	if role == rbac.RoleAdmin {
		admin, err := s.repo.GetAdminByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, autherrors.ErrUserNotFound
			}
			return nil, err
		}
		return &AuthResponse{
			Username: admin.Username,
			FullName: admin.FullName,
			Role:     rbac.RoleAdmin,
		}, nil
	}

	empl, err := s.employeeRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}
	return &AuthResponse{
		Username:     empl.Username,
		FullName:     empl.FullName,
		Role:         rbac.RoleEmployee,
		EmployeeCode: empl.EmployeeCode,
	}, nil
}

func (s *service) generateToken(username, role, employeeCode string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username":      username,
		"role":          role,
		"employee_code": employeeCode,
		"exp":           time.Now().Add(ttl).Unix(),
		"iat":           time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
