package tbtimage

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	tbtimageerrors "go-attendance/internal/tbtimage/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=tbtimage_service.go -destination=mock/tbtimage_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, actor string, req UploadRequest) (ImageResponse, error)
	ListByDate(ctx context.Context, date string) ([]ImageResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByDate(ctx context.Context, date string) (DeleteAllResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tbtimage.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tbtimage.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Upload(ctx context.Context, actor string, req UploadRequest) (ImageResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ImageResponse{}, tbtimageerrors.ErrInvalidDate
	}
	if strings.TrimSpace(req.Payload) == "" {
		return ImageResponse{}, tbtimageerrors.ErrEmptyImageData
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Payload)
	if err != nil {
		return ImageResponse{}, tbtimageerrors.ErrEmptyImageData
	}

	img := &TBTImage{
		ID:         uuid.New(),
		ImageDate:  date,
		FileName:   req.FileName,
		Format:     strings.ToLower(req.Format),
		SizeBytes:  int64(len(decoded)),
		Payload:    req.Payload,
		UploadedBy: actor,
		UploadedAt: time.Now().UTC(),
	}

	inserted, err := s.repo.CreateIfWithinQuota(ctx, img)
	if err != nil {
		return ImageResponse{}, err
	}
	if !inserted {
		return ImageResponse{}, tbtimageerrors.ErrImageQuotaExceeded
	}

	s.logger.Info("tbt image uploaded",
		zap.String("date", req.Date),
		zap.String("file_name", req.FileName),
		zap.Int64("size_bytes", img.SizeBytes),
		zap.String("uploaded_by", actor),
	)
	return mapToResponse(*img, false), nil
}

func (s *service) ListByDate(ctx context.Context, dateStr string) ([]ImageResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, tbtimageerrors.ErrInvalidDate
	}

	rows, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	res := make([]ImageResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, true)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tbtimageerrors.ErrImageNotFound
		}
		return err
	}
	if !deleted {
		return tbtimageerrors.ErrImageNotFound
	}

	s.logger.Info("tbt image deleted", zap.String("id", id))
	return nil
}

func (s *service) DeleteAllByDate(ctx context.Context, dateStr string) (DeleteAllResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return DeleteAllResponse{}, tbtimageerrors.ErrInvalidDate
	}

	deleted, err := s.repo.DeleteAllByDate(ctx, date)
	if err != nil {
		return DeleteAllResponse{}, err
	}

	s.logger.Info("tbt images deleted for date",
		zap.String("date", dateStr),
		zap.Int64("deleted", deleted),
	)
	return DeleteAllResponse{Date: dateStr, Deleted: deleted}, nil
}

func mapToResponse(img TBTImage, includePayload bool) ImageResponse {
	res := ImageResponse{
		ID:         img.ID.String(),
		Date:       img.ImageDate.Format("2006-01-02"),
		FileName:   img.FileName,
		Format:     img.Format,
		SizeBytes:  img.SizeBytes,
		UploadedBy: img.UploadedBy,
		UploadedAt: img.UploadedAt.Format(time.RFC3339),
	}
	if includePayload {
		res.Payload = img.Payload
	}
	return res
}
