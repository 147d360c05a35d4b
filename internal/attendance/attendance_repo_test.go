package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_WithTxUsesTransactionConnection(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	txMock.ExpectExec(`UPDATE "attendance_records" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txDB.Begin()
	assert.NoError(t, err)

	repo := NewRepository(gormDB)
	row := &Attendance{
		ID:             uuid.New(),
		EmployeeCode:   "EMP0001",
		AttendanceDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:         StatusPresent,
		MarkedBy:       "admin",
		CreatedAt:      time.Now().UTC(),
	}
	err = repo.WithTx(tx).Update(context.Background(), row)
	assert.NoError(t, err)
	assert.NoError(t, tx.Rollback())

	// Semua statement harus lewat koneksi transaksi; pool tidak disentuh.
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
