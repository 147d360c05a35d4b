package tbtimage

import (
	"time"

	"github.com/google/uuid"
)

const MaxImagesPerDate = 2

type TBTImage struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ImageDate  time.Time `gorm:"column:image_date;type:date;not null;index"`
	FileName   string    `gorm:"column:file_name;type:varchar(255);not null"`
	Format     string    `gorm:"column:format;type:varchar(10);not null"`
	SizeBytes  int64     `gorm:"column:size_bytes;not null"`
	Payload    string    `gorm:"column:payload;type:text;not null"`
	UploadedBy string    `gorm:"column:uploaded_by;type:varchar(50);not null"`
	UploadedAt time.Time `gorm:"column:uploaded_at;not null"`
}

func (TBTImage) TableName() string {
	return "tbt_images"
}
