package main

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sambam0/Pricewise-tool/internal/config"
	"github.com/sambam0/Pricewise-tool/internal/logging"
)

type server struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	srv := &server{cfg: cfg, log: logger}

	r := chi.NewRouter()
	r.Use(logging.RequestLogger(logger))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Get("/", srv.handleCostForm)
	r.Post("/", srv.handleCostSubmit)
	r.Get("/market-analysis", srv.handleMarketForm)
	r.Post("/market-analysis", srv.handleMarketSubmit)
	r.Get("/pricing-strategy", srv.handleStrategies)
	r.Get("/optimization-simulator", srv.handleSimulatorForm)
	r.Post("/optimization-simulator", srv.handleSimulatorSubmit)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		filepath.Join(s.cfg.TemplatesDir, "layout.html"),
		filepath.Join(s.cfg.TemplatesDir, page),
	)
	if err != nil {
		s.log.Error("parse template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error("render template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
