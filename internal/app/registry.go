package app

import (
	"database/sql"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/editlog"
	"go-attendance/internal/employee"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/rbac"
	"go-attendance/internal/report"
	"go-attendance/internal/request"
	"go-attendance/internal/shared/counter"
	"go-attendance/internal/tbtimage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	editLogRepo := editlog.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	tbtImageRepo := tbtimage.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo, editLogRepo, employeeRepo)
	editLogService := editlog.NewService(editLogRepo)
	requestService := request.NewServiceWithOutbox(db, requestRepo, attendanceRepo, employeeRepo, outboxRepo)
	tbtImageService := tbtimage.NewService(tbtImageRepo)
	reportService := report.NewService(attendanceRepo, employeeRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	editLogHandler := editlog.NewHandler(editLogService)
	requestHandler := request.NewHandler(requestService)
	tbtImageHandler := tbtimage.NewHandler(tbtImageService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		editlog.RegisterRoutes(api, editLogHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService, rdb)
		tbtimage.RegisterRoutes(api, tbtImageHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
	}

	return nil
}
