package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"teacher-salary/http-server/calculate"
	getembed "teacher-salary/http-server/embed/get"
	generate_excel "teacher-salary/http-server/generate-report/generate-excel"
	"teacher-salary/http-server/live"
	getoptions "teacher-salary/http-server/options/get"
	getsession "teacher-salary/http-server/session/get"
	"teacher-salary/http-server/session/remove"
	"teacher-salary/http-server/session/save"
	"teacher-salary/http-server/session/update"
	"teacher-salary/internal/config"
	"teacher-salary/internal/middleware/embed"
	"teacher-salary/internal/service/calculator"
	embedgen "teacher-salary/internal/service/embed"
	generate_excel2 "teacher-salary/internal/service/generate-excel"
)

func routes(cfg config.Config, log *slog.Logger, service *calculator.CalculatorService, genService *generate_excel2.GenerateExcelService, embedGen *embedgen.Generator) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(embed.Detect(cfg.Embed.FrameAncestors))

	router.Get("/api/options", getoptions.GetOptions(log, service))
	router.Post("/api/calculate", calculate.CalculateSalary(log, service))

	router.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", save.CreateSession(log, service))
		r.Get("/{id}", getsession.GetSession(log, service))
		r.Patch("/{id}", update.UpdateSession(log, service))
		r.Delete("/{id}", remove.DeleteSession(log, service))
	})

	router.Get("/api/live", live.Live(log, live.NewUpgrader(cfg.CORS.AllowedOrigins)))

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))
	router.Get("/api/embed", getembed.GetEmbed(log, embedGen))

	return router
}
