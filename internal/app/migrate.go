package app

import (
	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/editlog"
	"go-attendance/internal/employee"
	"go-attendance/internal/request"
	"go-attendance/internal/tbtimage"

	"gorm.io/gorm"
)

// counters dan outbox_events dikelola lewat raw SQL karena diakses
// dengan query mentah, bukan lewat model gorm.
const countersDDL = `
CREATE TABLE IF NOT EXISTS counters (
    counter_type VARCHAR(50) PRIMARY KEY,
    last_value   BIGINT NOT NULL DEFAULT 0,
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id             UUID PRIMARY KEY,
    request_id     VARCHAR(100),
    aggregate_type VARCHAR(50) NOT NULL,
    aggregate_id   VARCHAR(100) NOT NULL,
    event_type     VARCHAR(100) NOT NULL,
    topic          VARCHAR(200) NOT NULL,
    payload        JSONB NOT NULL,
    status         VARCHAR(20) NOT NULL DEFAULT 'pending',
    retry_count    INT NOT NULL DEFAULT 0,
    error_message  VARCHAR(500),
    next_retry_at  TIMESTAMPTZ,
    processed_at   TIMESTAMPTZ,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&editlog.EditLog{},
		&request.AttendanceRequest{},
		&tbtimage.TBTImage{},
		&auth.Admin{},
	); err != nil {
		return err
	}

	if err := db.Exec(countersDDL).Error; err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
