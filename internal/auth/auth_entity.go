package auth

import (
	"time"

	"github.com/google/uuid"
)

// Admin adalah akun administrator, terpisah dari tabel employees
type Admin struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_admins_username"`
	Password  string    `gorm:"type:varchar(255);not null"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Admin) TableName() string {
	return "admins"
}
