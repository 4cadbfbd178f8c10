package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/officemate-hq/officemate-backend-go/internal/config"
	appHTTP "github.com/officemate-hq/officemate-backend-go/internal/handler/http"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/jwt"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/oauth"
	"github.com/officemate-hq/officemate-backend-go/internal/repository/postgresql"
	attendanceService "github.com/officemate-hq/officemate-backend-go/internal/service/attendance"
	authService "github.com/officemate-hq/officemate-backend-go/internal/service/auth"
	eventService "github.com/officemate-hq/officemate-backend-go/internal/service/event"
	expenseService "github.com/officemate-hq/officemate-backend-go/internal/service/expense"
	leaveService "github.com/officemate-hq/officemate-backend-go/internal/service/leave"
	payrollService "github.com/officemate-hq/officemate-backend-go/internal/service/payroll"
	reportService "github.com/officemate-hq/officemate-backend-go/internal/service/report"
	taskService "github.com/officemate-hq/officemate-backend-go/internal/service/task"
	userService "github.com/officemate-hq/officemate-backend-go/internal/service/user"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "officemate"),
	)

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	eventRepo := postgresql.NewEventRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleSvc *oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleSvc = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo, googleSvc)
	userSvc := userService.NewUserService(userRepo)
	payrollSvc := payrollService.NewPayrollService(db, logger, payrollRepo, userRepo, leaveRepo, reportRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	eventSvc := eventService.NewEventService(eventRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		jwtSvc,
		authHandler,
		userHandler,
		payrollHandler,
		leaveHandler,
		reportHandler,
		attendanceHandler,
		taskHandler,
		expenseHandler,
		eventHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
