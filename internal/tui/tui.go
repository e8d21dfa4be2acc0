// Package tui provides a Bubble Tea terminal user interface for shootdir.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/shootdir/internal/config"
	"github.com/handiism/shootdir/internal/model"
	"github.com/handiism/shootdir/internal/scaffold"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateForm State = iota
	StateRunning
	StateComplete
	StateError
)

// Form field positions.
const (
	fieldName = iota
	fieldDays
	fieldCams
	fieldSound
	fieldDeadname
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Project name",
	"Days",
	"Cameras",
	"Sound sources",
	"Deadname (optional)",
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scaffold.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   [fieldCount]textinput.Model
	focus    int
	spinner  spinner.Model
	progress progress.Model
	logs     []LogEntry
	err      error

	baseDir   string
	operation model.Operation
	verbose   bool

	events chan tea.Msg
	report *scaffold.Report

	done  int
	total int
}

// NewModel creates a new TUI model working in baseDir. Fields are prefilled
// from config.toml when one exists.
func NewModel(baseDir string) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldName].Placeholder = "Shoot01"
	inputs[fieldDays].Placeholder = "1"
	inputs[fieldCams].Placeholder = "1"
	inputs[fieldSound].Placeholder = "1"
	inputs[fieldDeadname].Placeholder = "previous root folder name"
	for _, f := range []int{fieldDays, fieldCams, fieldSound} {
		inputs[f].CharLimit = 3
	}
	inputs[fieldName].Focus()

	operation := model.OperationNew
	configPath := scaffold.NewManager(baseDir, nil).ConfigPath()
	if cfg, found, err := config.Load(configPath); err == nil && found {
		operation = model.OperationUpdate
		inputs[fieldName].SetValue(cfg.Setup.Name)
		inputs[fieldDays].SetValue(strconv.Itoa(cfg.Setup.Days))
		inputs[fieldCams].SetValue(strconv.Itoa(cfg.Setup.Cameras))
		inputs[fieldSound].SetValue(strconv.Itoa(cfg.Setup.SoundSources))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:     StateForm,
		inputs:    inputs,
		spinner:   sp,
		progress:  prog,
		logs:      make([]LogEntry, 0),
		baseDir:   baseDir,
		operation: operation,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every scaffold progress event.
	ProgressMsg struct {
		Event scaffold.ProgressEvent
	}

	// DoneMsg is sent when the run finishes.
	DoneMsg struct {
		Report *scaffold.Report
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state != StateRunning {
				return m, tea.Quit
			}

		case "tab", "down":
			if m.state == StateForm {
				m.setFocus((m.focus + 1) % fieldCount)
				return m, nil
			}

		case "shift+tab", "up":
			if m.state == StateForm {
				m.setFocus((m.focus + fieldCount - 1) % fieldCount)
				return m, nil
			}

		case "ctrl+t":
			if m.state == StateForm {
				if m.operation == model.OperationNew {
					m.operation = model.OperationUpdate
				} else {
					m.operation = model.OperationNew
				}
				return m, nil
			}

		case "ctrl+v":
			if m.state == StateForm {
				m.verbose = !m.verbose
				return m, nil
			}

		case "enter":
			if m.state == StateForm {
				if m.focus < fieldCount-1 {
					m.setFocus(m.focus + 1)
					return m, nil
				}
				overrides, err := m.overrides()
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.state = StateRunning
				m.events = make(chan tea.Msg, 64)
				return m, tea.Batch(m.startRun(overrides), waitForEvent(m.events), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Back to the form with the last values kept.
				m.state = StateForm
				m.logs = nil
				m.err = nil
				m.report = nil
				m.done, m.total = 0, 0
				m.operation = model.OperationUpdate
				m.inputs[fieldDeadname].SetValue("")
				m.setFocus(fieldName)
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Total > 0 {
			m.done, m.total = msg.Event.Done, msg.Event.Total
			cmds = append(cmds, m.progress.SetPercent(float64(m.done)/float64(m.total)))
		}
		if msg.Event.Level != scaffold.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, waitForEvent(m.events))

	case DoneMsg:
		m.report = msg.Report
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// overrides converts the form into config overrides. Empty fields are not
// given; numeric fields must be non-negative integers.
func (m Model) overrides() (config.Overrides, error) {
	var o config.Overrides

	if v := strings.TrimSpace(m.inputs[fieldName].Value()); v != "" {
		o.Name = &v
	}
	if v := strings.TrimSpace(m.inputs[fieldDeadname].Value()); v != "" {
		o.Deadname = &v
	}

	counts := []struct {
		field int
		dst   **int
	}{
		{fieldDays, &o.Days},
		{fieldCams, &o.Cameras},
		{fieldSound, &o.SoundSources},
	}
	for _, c := range counts {
		v := strings.TrimSpace(m.inputs[c.field].Value())
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return o, fmt.Errorf("%s must be a whole number, got %q", fieldLabels[c.field], v)
		}
		*c.dst = &n
	}
	return o, nil
}

// startRun runs the scaffold in the background, forwarding events to m.events.
func (m Model) startRun(overrides config.Overrides) tea.Cmd {
	events := m.events
	req := scaffold.Request{Operation: m.operation, Overrides: overrides}
	baseDir := m.baseDir
	return func() tea.Msg {
		manager := scaffold.NewManager(baseDir, func(event scaffold.ProgressEvent) {
			events <- ProgressMsg{Event: event}
		})
		report, err := manager.Run(req)
		events <- DoneMsg{Report: report, Err: err}
		return nil
	}
}

// waitForEvent returns a command that delivers the next run event.
func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎬 shootdir"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Scaffold production project folders"))
	b.WriteString("\n\n")

	switch m.state {
	case StateForm:
		b.WriteString(m.viewForm())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Operation: %s", m.operation)))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus {
			label = infoStyle.Render("› " + label)
		} else {
			label = dimStyle.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Working directory: %s", m.baseDir)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Creating folders..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Folders: %d/%d", m.done, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	r := m.report
	box := boxStyle.Render(fmt.Sprintf(
		"✨ %s is ready\n\n"+
			"Root: %s\n"+
			"Created: %d\n"+
			"Already present: %d",
		r.Config.Setup.Name,
		r.Decision.Action,
		len(r.Created),
		len(r.Existing),
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	shown := r.Created
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, path := range shown {
		b.WriteString(folderStyle.Render("  + " + path))
		b.WriteString("\n")
	}
	if extra := len(r.Created) - len(shown); extra > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", extra)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case scaffold.LevelError:
			style = errorStyle
			prefix = "✗"
		case scaffold.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scaffold.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scaffold.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateForm:
		return "tab: next field • enter: next/run • ctrl+t: new/update • ctrl+v: verbose • esc: quit"
	case StateRunning:
		return "ctrl+c: quit"
	case StateComplete, StateError:
		return "r: edit again • q: quit"
	}
	return ""
}

// Run starts the TUI application in baseDir.
func Run(baseDir string) error {
	p := tea.NewProgram(NewModel(baseDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
