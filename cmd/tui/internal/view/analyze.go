package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/encoding"
)

const analyzeTimeout = 30 * time.Second

type analyzeState int

const (
	analyzeStateFilePick analyzeState = iota
	analyzeStateRunning
	analyzeStateResult
)

type AnalyzeModel struct {
	CommonModel
	svc *analyzer.Service

	state      analyzeState
	filePicker filepicker.Model

	result *analyzer.Result
	err    error
}

func NewAnalyzeModel(svc *analyzer.Service) AnalyzeModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return AnalyzeModel{
		svc:        svc,
		filePicker: fp,
	}
}

func (m AnalyzeModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

type analyzeResultMsg struct {
	result *analyzer.Result
	err    error
}

func (m AnalyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == analyzeStateResult {
				m.state = analyzeStateFilePick
				m.result = nil
				m.err = nil

				return m, m.filePicker.Init()
			}

			return m, Back
		}

	case analyzeResultMsg:
		m.state = analyzeStateResult
		m.result = msg.result
		m.err = msg.err

		return m, nil
	}

	if m.state == analyzeStateFilePick {
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if ok, path := m.filePicker.DidSelectFile(msg); ok {
			m.state = analyzeStateRunning
			return m, m.analyzeCmd(path)
		}

		return m, cmd
	}

	return m, nil
}

// analyzeCmd reads the selected file through encoding detection and runs the
// pipeline off the UI loop.
func (m AnalyzeModel) analyzeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return analyzeResultMsg{err: err}
		}
		defer f.Close()

		text, err := encoding.ReadAllText(f)
		if err != nil {
			return analyzeResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
		defer cancel()

		result, err := m.svc.Analyze(ctx, analyzer.Input{
			FileName: filepath.Base(path),
			Text:     text,
		})

		return analyzeResultMsg{result: result, err: err}
	}
}

func (m AnalyzeModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	switch m.state {
	case analyzeStateFilePick:
		return style.Render(
			headingStyle.Render("Analyze a document") + "\n\n" +
				m.filePicker.View() + "\n" +
				dimStyle.Render("Esc: back"),
		)

	case analyzeStateRunning:
		return style.Render("Analyzing...")

	case analyzeStateResult:
		if m.err != nil {
			return style.Render(
				errorStyle.Render(fmt.Sprintf("Analysis failed: %v", m.err)) + "\n\n" +
					dimStyle.Render("Esc: pick another file"),
			)
		}

		return style.Render(
			RenderResult(m.result) + "\n" +
				dimStyle.Render("Esc: pick another file"),
		)
	}

	return ""
}
