package request

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Partial unique index: satu request aktif (PENDING/APPROVED) per
// karyawan per tanggal. Request REJECTED boleh diajukan ulang.
type AttendanceRequest struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string     `gorm:"column:employee_code;type:varchar(10);not null;index:uq_requests_employee_date_active,unique,where:status IN ('PENDING','APPROVED')"`
	RequestDate  time.Time  `gorm:"column:request_date;type:date;not null;index:uq_requests_employee_date_active,unique,where:status IN ('PENDING','APPROVED')"`
	Message      string     `gorm:"column:message;type:text;not null"`
	Status       string     `gorm:"column:status;type:varchar(10);not null;default:PENDING;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	ResolvedBy   *string    `gorm:"column:resolved_by;type:varchar(50)"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at"`
}

func (AttendanceRequest) TableName() string {
	return "attendance_requests"
}
