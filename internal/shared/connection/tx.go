package connection

import (
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormWithTx mengikat sesi gorm ke *sql.Tx yang sedang berjalan, sehingga
// semua operasi repo ikut commit/rollback transaksi milik service.
func GormWithTx(base *gorm.DB, tx *sql.Tx) *gorm.DB {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{
		Logger: base.Config.Logger,
	})
	if err != nil {
		// Tidak terjadi dengan koneksi hidup; operasi berikutnya akan
		// mengembalikan error ini alih-alih menulis di luar transaksi.
		gdb = base.Session(&gorm.Session{NewDB: true})
		_ = gdb.AddError(err)
	}
	return gdb
}
