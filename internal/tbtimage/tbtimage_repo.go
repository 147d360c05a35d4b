package tbtimage

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tbtimage_repo.go -destination=mock/tbtimage_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateIfWithinQuota(ctx context.Context, img *TBTImage) (bool, error)
	FindByDate(ctx context.Context, date time.Time) ([]TBTImage, error)
	FindByID(ctx context.Context, id string) (*TBTImage, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteAllByDate(ctx context.Context, date time.Time) (int64, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang operasinya berjalan di dalam tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GormWithTx(r.db, tx)}
}

// CreateIfWithinQuota melakukan insert bersyarat: kuota diperiksa di dalam
// INSERT itu sendiri. Advisory lock per tanggal menserialkan upload
// bersamaan — di READ COMMITTED dua statement paralel bisa sama-sama
// melihat count=1 tanpa lock ini.
func (r *repository) CreateIfWithinQuota(ctx context.Context, img *TBTImage) (bool, error) {
	dateStr := img.ImageDate.Format("2006-01-02")
	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, "tbt_images:"+dateStr).Error; err != nil {
			return err
		}
		res := tx.Exec(`
INSERT INTO tbt_images (id, image_date, file_name, format, size_bytes, payload, uploaded_by, uploaded_at)
SELECT ?, ?, ?, ?, ?, ?, ?, ?
WHERE (SELECT COUNT(*) FROM tbt_images WHERE image_date = ?) < ?
`,
			img.ID, dateStr, img.FileName, img.Format, img.SizeBytes,
			img.Payload, img.UploadedBy, img.UploadedAt,
			dateStr, MaxImagesPerDate,
		)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected > 0
		return nil
	})
	return inserted, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]TBTImage, error) {
	var rows []TBTImage
	err := r.db.WithContext(ctx).
		Where("image_date = ?", date.Format("2006-01-02")).
		Order("uploaded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*TBTImage, error) {
	var img TBTImage
	err := r.db.WithContext(ctx).
		First(&img, "id = ?", id).Error
	return &img, err
}

func (r *repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Delete(&TBTImage{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteAllByDate menghapus semua gambar satu tanggal dalam satu DELETE.
func (r *repository) DeleteAllByDate(ctx context.Context, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&TBTImage{}, "image_date = ?", date.Format("2006-01-02"))
	return res.RowsAffected, res.Error
}

func (r *repository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TBTImage{}).
		Where("image_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}
