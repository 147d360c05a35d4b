package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

// Satu baris per karyawan per tanggal, dijaga oleh unique index.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode   string     `gorm:"column:employee_code;type:varchar(10);not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Status         string     `gorm:"column:status;type:varchar(10);not null"`
	MarkedBy       string     `gorm:"column:marked_by;type:varchar(50);not null"`
	Note           *string    `gorm:"column:note;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedBy      *string    `gorm:"column:updated_by;type:varchar(50)"`
	UpdatedAt      *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

func ValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}
