package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/encoding"
)

const batchTimeout = 2 * time.Minute

// textExtensions are the file types picked up from a batch folder.
var textExtensions = map[string]bool{
	".txt": true,
	".ocr": true,
	".csv": true,
	".md":  true,
}

type batchState int

const (
	batchStatePath batchState = iota
	batchStateRunning
	batchStateList
	batchStateDetail
)

type BatchModel struct {
	CommonModel
	svc *analyzer.Service

	state batchState

	form    *huh.Form
	path    string
	spinner spinner.Model

	batch       *analyzer.Batch
	outcomeList list.Model
	selected    *analyzer.Outcome

	err error
}

func NewBatchModel(svc *analyzer.Service) BatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := BatchModel{
		svc:     svc,
		path:    ".",
		spinner: s,
	}
	m.form = m.buildPathForm()

	return m
}

func (m BatchModel) Init() tea.Cmd {
	return m.form.Init()
}

type batchResultMsg struct {
	batch *analyzer.Batch
	err   error
}

// outcomeItem adapts an analyzer outcome to the bubbles list.
type outcomeItem struct {
	outcome analyzer.Outcome
}

func (i outcomeItem) Title() string {
	return i.outcome.FileName
}

func (i outcomeItem) Description() string {
	if i.outcome.Err != nil {
		return "failed: " + i.outcome.Err.Error()
	}

	res := i.outcome.Result

	return fmt.Sprintf("%s | confidence %.0f%% | %s",
		res.Type, res.Confidence, validitySummary(res))
}

func (i outcomeItem) FilterValue() string {
	return i.outcome.FileName
}

func validitySummary(res *analyzer.Result) string {
	if res.Validation.Valid {
		return "valid"
	}

	return fmt.Sprintf("%d error(s)", len(res.Validation.Errors))
}

func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case batchResultMsg:
		if msg.err != nil {
			m.state = batchStatePath
			m.err = msg.err
			m.form = m.buildPathForm()

			return m, m.form.Init()
		}

		m.err = nil
		m.batch = msg.batch
		m.outcomeList = newOutcomeList(msg.batch, m.Width, m.Height)
		m.state = batchStateList

		return m, nil
	}

	switch m.state {
	case batchStatePath:
		return m.updatePath(msg)
	case batchStateRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case batchStateList:
		return m.updateList(msg)
	case batchStateDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m BatchModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = batchStateRunning

	return m, tea.Batch(m.spinner.Tick, m.runBatchCmd(m.path))
}

func (m BatchModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			if item, ok := m.outcomeList.SelectedItem().(outcomeItem); ok {
				m.selected = &item.outcome
				m.state = batchStateDetail
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.outcomeList, cmd = m.outcomeList.Update(msg)

	return m, cmd
}

func (m BatchModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = batchStateList
		m.selected = nil
	}

	return m, nil
}

// runBatchCmd collects the folder's text files and runs them through the
// pipeline as one batch.
func (m BatchModel) runBatchCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ins, err := collectInputs(dir)
		if err != nil {
			return batchResultMsg{err: err}
		}

		if len(ins) == 0 {
			return batchResultMsg{err: fmt.Errorf("no text files found in %s", dir)}
		}

		ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
		defer cancel()

		return batchResultMsg{batch: m.svc.AnalyzeBatch(ctx, ins)}
	}
}

func collectInputs(dir string) ([]analyzer.Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var ins []analyzer.Input

	for _, entry := range entries {
		if entry.IsDir() || !textExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		f, err := os.Open(path)
		if err != nil {
			continue
		}

		text, err := encoding.ReadAllText(f)
		f.Close()

		if err != nil {
			continue
		}

		ins = append(ins, analyzer.Input{FileName: entry.Name(), Text: text})
	}

	sort.Slice(ins, func(i, j int) bool { return ins[i].FileName < ins[j].FileName })

	return ins, nil
}

func newOutcomeList(batch *analyzer.Batch, width, height int) list.Model {
	items := make([]list.Item, 0, len(batch.Outcomes))
	for _, o := range batch.Outcomes {
		items = append(items, outcomeItem{outcome: o})
	}

	if width == 0 {
		width = 80
	}

	if height == 0 {
		height = 24
	}

	l := list.New(items, list.NewDefaultDelegate(), width-4, height-6)
	l.Title = fmt.Sprintf("Batch: %d analyzed, %d ok, %d failed",
		batch.Total, batch.Successful, batch.Failed)

	return l
}

func (m BatchModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Folder to analyze").
				Description("Every .txt/.ocr/.csv/.md file is analyzed").
				Placeholder(".").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m BatchModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	switch m.state {
	case batchStatePath:
		view := m.form.View()

		if m.err != nil {
			view = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + view
		}

		return style.Render(view)

	case batchStateRunning:
		return style.Render(fmt.Sprintf("%s Analyzing folder...", m.spinner.View()))

	case batchStateList:
		return style.Render(m.outcomeList.View() + "\n" + dimStyle.Render("Enter: detail | Esc: back"))

	case batchStateDetail:
		return style.Render(m.viewDetail())
	}

	return ""
}

func (m BatchModel) viewDetail() string {
	if m.selected == nil {
		return ""
	}

	header := headingStyle.Render(m.selected.FileName) + "\n\n"

	if m.selected.Err != nil {
		return header +
			errorStyle.Render(fmt.Sprintf("Analysis failed: %v", m.selected.Err)) + "\n\n" +
			dimStyle.Render("Esc: back to list")
	}

	return header + RenderResult(m.selected.Result) + "\n" + dimStyle.Render("Esc: back to list")
}
