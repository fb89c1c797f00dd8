package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/classifier"
	"github.com/contaro/docintel/internal/config"
	docintelHttp "github.com/contaro/docintel/internal/http"
	chartHandler "github.com/contaro/docintel/internal/http/chart"
	docHandler "github.com/contaro/docintel/internal/http/document"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	chart := accounts.DefaultChart()

	if cfg.Tables.ChartPath != "" {
		chart, err = accounts.LoadChart(cfg.Tables.ChartPath)
		if err != nil {
			slog.Error("failed to load chart of accounts", "path", cfg.Tables.ChartPath, "error", err)
			os.Exit(1)
		}
	}

	cls := classifier.New()

	if cfg.Tables.KeywordsPath != "" {
		families, err := classifier.LoadFamilies(cfg.Tables.KeywordsPath)
		if err != nil {
			slog.Error("failed to load classifier keywords", "path", cfg.Tables.KeywordsPath, "error", err)
			os.Exit(1)
		}

		cls = classifier.NewWithFamilies(families)
	}

	var (
		suggester      = accounts.NewSuggester(chart)
		analyzeService = analyzer.NewService(cls, suggester, cfg.Analyze.MaxTextBytes)
	)

	var (
		documentsH = docHandler.NewHandler(analyzeService)
		chartH     = chartHandler.NewHandler(suggester)
	)

	router := docintelHttp.New(documentsH, chartH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
