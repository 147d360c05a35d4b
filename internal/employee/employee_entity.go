package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(10);not null;uniqueIndex:uq_employees_code"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	Phone        string    `gorm:"type:varchar(30)"`
	Department   string    `gorm:"type:varchar(100);not null"`
	Position     string    `gorm:"type:varchar(100);not null"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_employees_username"`
	Password     string    `gorm:"type:varchar(255);not null"`
	JoinDate     time.Time `gorm:"type:date;not null"`
	// Karyawan tidak pernah dihapus, hanya dinonaktifkan
	IsActive  bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}
