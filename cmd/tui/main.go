package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/contaro/docintel/cmd/tui/internal/view"
	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/classifier"
	"github.com/contaro/docintel/internal/config"
)

type model struct {
	analyzeService *analyzer.Service

	currentView View

	analyzeView view.AnalyzeModel
	batchView   view.BatchModel
}

type View int

const (
	ViewMenu    View = 0
	ViewAnalyze View = 1
	ViewBatch   View = 2
)

func initialModel() model {
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
			slog.Error("failed to load chart of accounts", "error", err)
			os.Exit(1)
		}
	}

	svc := analyzer.NewService(classifier.New(), accounts.NewSuggester(chart), cfg.Analyze.MaxTextBytes)

	return model{
		analyzeService: svc,
		currentView:    ViewMenu,
		analyzeView:    view.NewAnalyzeModel(svc),
		batchView:      view.NewBatchModel(svc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAnalyze
				m.analyzeView = view.NewAnalyzeModel(m.analyzeService)

				return m, m.analyzeView.Init()
			case "2":
				m.currentView = ViewBatch
				m.batchView = view.NewBatchModel(m.analyzeService)

				return m, m.batchView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAnalyze:
		var newModel tea.Model
		newModel, cmd = m.analyzeView.Update(msg)
		m.analyzeView = newModel.(view.AnalyzeModel)
	case ViewBatch:
		var newModel tea.Model
		newModel, cmd = m.batchView.Update(msg)
		m.batchView = newModel.(view.BatchModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Contaro Document Review\n\n" +
				"1. Analyze a document\n" +
				"2. Batch analyze a folder\n\n" +
				"q. Quit",
		)
	case ViewAnalyze:
		return m.analyzeView.View()
	case ViewBatch:
		return m.batchView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
