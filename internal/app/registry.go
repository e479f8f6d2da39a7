package app

import (
	"database/sql"

	"go-payroll/internal/assignment"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/period"
	"go-payroll/internal/report"
	"go-payroll/internal/salarycomponent"
	"go-payroll/internal/shared/counter"

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
	assignmentRepo := assignment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	periodRepo := period.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	salaryComponentRepo := salarycomponent.NewRepository(gormDB)

	// --- Services ---
	assignmentService := assignment.NewService(db, assignmentRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)
	periodService := period.NewServiceWithOutbox(db, periodRepo, outboxRepo)
	reportService := report.NewService(reportRepo, rdb)
	salaryComponentService := salarycomponent.NewService(db, salaryComponentRepo)

	// --- Handlers ---
	assignmentHandler := assignment.NewHandler(assignmentService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	periodHandler := period.NewHandler(periodService)
	reportHandler := report.NewHandler(reportService)
	salaryComponentHandler := salarycomponent.NewHandler(salaryComponentService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		assignment.RegisterRoutes(api, assignmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		payroll.RegisterRoutes(api, payrollHandler, middleware.Idempotency(rdb))
		period.RegisterRoutes(api, periodHandler)
		report.RegisterRoutes(api, reportHandler)
		salarycomponent.RegisterRoutes(api, salaryComponentHandler)
	}

	return nil
}
