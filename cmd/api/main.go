package main

import (
	"fmt"
	"net/http"

	"github.com/Shashika071/crenixline-sub000/internal/config"
	appHTTP "github.com/Shashika071/crenixline-sub000/internal/handler/http"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/Shashika071/crenixline-sub000/internal/repository/postgresql"
	advanceService "github.com/Shashika071/crenixline-sub000/internal/service/advance"
	attendanceService "github.com/Shashika071/crenixline-sub000/internal/service/attendance"
	calendarService "github.com/Shashika071/crenixline-sub000/internal/service/calendar"
	closureService "github.com/Shashika071/crenixline-sub000/internal/service/closure"
	leaveService "github.com/Shashika071/crenixline-sub000/internal/service/leave"
	payrollService "github.com/Shashika071/crenixline-sub000/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	closureRepo := postgresql.NewClosureRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)

	calendars := calendarService.NewService(closureRepo)
	leaves := leaveService.NewService(employeeRepo, attendanceRepo, leaveRequestRepo)
	attendances := attendanceService.NewService(employeeRepo, attendanceRepo, leaves, calendars)
	txManager := postgresql.NewTxManager(db)
	payrolls := payrollService.NewService(txManager, employeeRepo, attendanceRepo, calendars, componentRepo, advanceRepo, payslipRepo)
	advances := advanceService.NewService(employeeRepo, advanceRepo)
	closures := closureService.NewService(closureRepo)

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewAttendanceHandler(attendances),
		appHTTP.NewLeaveHandler(leaves),
		appHTTP.NewPayrollHandler(payrolls),
		appHTTP.NewAdvanceHandler(advances),
		appHTTP.NewClosureHandler(closures),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
