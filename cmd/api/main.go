package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffsync/timeclock-backend-go/internal/config"
	appHTTP "github.com/staffsync/timeclock-backend-go/internal/handler/http"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/cron"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/jwt"
	"github.com/staffsync/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffsync/timeclock-backend-go/internal/service/attendance"
	employeeService "github.com/staffsync/timeclock-backend-go/internal/service/employee"
	leaveService "github.com/staffsync/timeclock-backend-go/internal/service/leave"
	orgService "github.com/staffsync/timeclock-backend-go/internal/service/org"
	payrollService "github.com/staffsync/timeclock-backend-go/internal/service/payroll"
	salaryService "github.com/staffsync/timeclock-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	orgRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	orgSvc := orgService.NewService(orgRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(sessionRepo)
	leaveSvc := leaveService.NewService(leaveTypeRepo, leaveRequestRepo, employeeRepo)
	salarySvc := salaryService.NewService(salaryConfigRepo, employeeRepo)
	payrollSvc := payrollService.NewService(db, payrollRepo, sessionRepo, leaveRequestRepo, salaryConfigRepo, orgRepo)

	handlers := appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Organization: appHTTP.NewOrganizationHandler(orgSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	sessionJobs := cron.NewSessionJobs(sessionRepo, cfg.Jobs.StaleSessionMaxAge)
	sessionJobs.RegisterJobs(scheduler, cfg.Jobs.StaleSessionSweep)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		fmt.Println("Server running on port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		log.Fatal("Server shutdown error: ", err)
	}
}
