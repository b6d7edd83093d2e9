package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/andresaoe/mi-jornada-calculada/internal/handler/http/middleware"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigin string
	Environment   string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	workDayHandler WorkDayHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mi-jornada-calculada"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
			})

			r.Route("/work-days", func(r chi.Router) {
				r.Get("/", workDayHandler.ListMonth)
				r.Post("/", workDayHandler.Create)
				r.Post("/bulk", workDayHandler.BulkCreate)
				r.Put("/{id}", workDayHandler.Update)
				r.Delete("/{id}", workDayHandler.Delete)

				r.Get("/summary", workDayHandler.MonthlySummary)
				r.Get("/surcharges", workDayHandler.MonthlySurcharges)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/config", payrollHandler.GetConfig)
				r.Put("/config", payrollHandler.UpdateConfig)
				r.Get("/payslip", payrollHandler.Payslip)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/month.xlsx", reportHandler.MonthlyExcel)
				r.Get("/payslip.pdf", reportHandler.PayslipPDF)
			})
		})
	})
	return r
}
