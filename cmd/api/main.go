package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/mawarid-ops/manpower-backend-go/internal/config"
	appHTTP "github.com/mawarid-ops/manpower-backend-go/internal/handler/http"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/database"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/money"
	"github.com/mawarid-ops/manpower-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mawarid-ops/manpower-backend-go/internal/service/attendance"
	employeeService "github.com/mawarid-ops/manpower-backend-go/internal/service/employee"
	projectService "github.com/mawarid-ops/manpower-backend-go/internal/service/project"
	rateService "github.com/mawarid-ops/manpower-backend-go/internal/service/rate"
	reportService "github.com/mawarid-ops/manpower-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	moneyFormatter, err := money.NewFormatter(cfg.Report.CurrencyCode, cfg.Report.Locale)
	if err != nil {
		log.Fatal("Failed to initialize money formatter:", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	rateRepo := postgresql.NewRateRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, projectRepo)
	rateSvc := rateService.NewRateService(rateRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, projectRepo, rateRepo, moneyFormatter)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	rateHandler := appHTTP.NewRateHandler(rateSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		employeeHandler,
		projectHandler,
		attendanceHandler,
		rateHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
