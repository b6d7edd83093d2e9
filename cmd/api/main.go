package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/andresaoe/mi-jornada-calculada/internal/config"
	appHTTP "github.com/andresaoe/mi-jornada-calculada/internal/handler/http"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/database"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/jwt"
	"github.com/andresaoe/mi-jornada-calculada/internal/repository/postgresql"
	authService "github.com/andresaoe/mi-jornada-calculada/internal/service/auth"
	payrollService "github.com/andresaoe/mi-jornada-calculada/internal/service/payroll"
	reportService "github.com/andresaoe/mi-jornada-calculada/internal/service/report"
	"github.com/andresaoe/mi-jornada-calculada/internal/service/salary"
	userService "github.com/andresaoe/mi-jornada-calculada/internal/service/user"
	workdayService "github.com/andresaoe/mi-jornada-calculada/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workDayRepo := postgresql.NewWorkDayRepository(db)
	payrollConfigRepo := postgresql.NewPayrollConfigRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	salaryCalculator := salary.NewCalculator()
	payrollCalculator := payrollService.NewCalculator()

	authSvc := authService.NewAuthService(userRepo, payrollConfigRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	workDaySvc := workdayService.NewWorkDayService(workDayRepo, userRepo, salaryCalculator)
	payrollSvc := payrollService.NewPayrollService(payrollConfigRepo, userRepo, workDayRepo, salaryCalculator, payrollCalculator)
	reportSvc := reportService.NewReportService(workDaySvc, payrollSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	profileHandler := appHTTP.NewProfileHandler(userSvc)
	workDayHandler := appHTTP.NewWorkDayHandler(workDaySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigin: cfg.App.AllowedOrigin,
			Environment:   cfg.App.Env,
		},
		JWTService,
		authHandler,
		profileHandler,
		workDayHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
