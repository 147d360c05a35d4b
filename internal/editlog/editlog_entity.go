package editlog

import (
	"time"

	"github.com/google/uuid"
)

// Append-only. Baris tidak pernah diubah atau dihapus setelah ditulis.
type EditLog struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode   string    `gorm:"column:employee_code;type:varchar(10);not null;index"`
	AttendanceDate time.Time `gorm:"column:attendance_date;type:date;not null"`
	OldStatus      string    `gorm:"column:old_status;type:varchar(10);not null"`
	NewStatus      string    `gorm:"column:new_status;type:varchar(10);not null"`
	Reason         string    `gorm:"column:reason;type:text;not null"`
	EditedBy       string    `gorm:"column:edited_by;type:varchar(50);not null"`
	EditedAt       time.Time `gorm:"column:edited_at;not null;index"`
}

func (EditLog) TableName() string {
	return "edit_logs"
}
