package editlog

import (
	"context"
)

//go:generate mockgen -source=editlog_service.go -destination=mock/editlog_service_mock.go -package=mock
type Service interface {
	GetRecent(ctx context.Context, limit int) ([]EditLogResponse, error)
	GetByEmployee(ctx context.Context, employeeCode string) ([]EditLogResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]EditLogResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.repo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeCode string) ([]EditLogResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func mapAll(rows []EditLog) []EditLogResponse {
	res := make([]EditLogResponse, len(rows))
	for i, r := range rows {
		res[i] = MapToResponse(r)
	}
	return res
}
