package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/shootdir/internal/config"
	"github.com/handiism/shootdir/internal/model"
	"github.com/handiism/shootdir/internal/scaffold"
)

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(t.TempDir())

	if m.state != StateForm {
		t.Errorf("state = %v, want StateForm", m.state)
	}
	if m.operation != model.OperationNew {
		t.Errorf("operation = %v, want new without config.toml", m.operation)
	}
	if m.focus != fieldName {
		t.Errorf("focus = %d, want name field", m.focus)
	}
}

func TestNewModel_PrefillsFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Setup.Name = "Shoot07"
	cfg.Setup.Cameras = 4
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		t.Fatal(err)
	}

	m := NewModel(dir)
	if m.operation != model.OperationUpdate {
		t.Errorf("operation = %v, want update", m.operation)
	}
	if got := m.inputs[fieldName].Value(); got != "Shoot07" {
		t.Errorf("name field = %q, want Shoot07", got)
	}
	if got := m.inputs[fieldCams].Value(); got != "4" {
		t.Errorf("cameras field = %q, want 4", got)
	}
}

func TestUpdate_FocusCycles(t *testing.T) {
	m := NewModel(t.TempDir())

	m = press(m, tea.KeyTab)
	if m.focus != fieldDays {
		t.Errorf("focus after tab = %d, want days", m.focus)
	}
	m = press(m, tea.KeyShiftTab)
	m = press(m, tea.KeyShiftTab)
	if m.focus != fieldDeadname {
		t.Errorf("focus should wrap to the last field, got %d", m.focus)
	}
}

func TestUpdate_ToggleOperation(t *testing.T) {
	m := NewModel(t.TempDir())

	m = press(m, tea.KeyCtrlT)
	if m.operation != model.OperationUpdate {
		t.Errorf("operation = %v, want update", m.operation)
	}
	m = press(m, tea.KeyCtrlT)
	if m.operation != model.OperationNew {
		t.Errorf("operation = %v, want new", m.operation)
	}
}

func TestOverrides(t *testing.T) {
	m := NewModel(t.TempDir())
	m.inputs[fieldName].SetValue(" Shoot01 ")
	m.inputs[fieldCams].SetValue("3")

	o, err := m.overrides()
	if err != nil {
		t.Fatalf("overrides() error: %v", err)
	}
	if o.Name == nil || *o.Name != "Shoot01" {
		t.Errorf("Name = %v, want Shoot01", o.Name)
	}
	if o.Cameras == nil || *o.Cameras != 3 {
		t.Errorf("Cameras = %v, want 3", o.Cameras)
	}
	if o.Days != nil || o.Deadname != nil {
		t.Errorf("empty fields should not override: %+v", o)
	}
}

func TestUpdate_RejectsBadNumber(t *testing.T) {
	m := NewModel(t.TempDir())
	m.inputs[fieldName].SetValue("Shoot01")
	m.inputs[fieldDays].SetValue("two")
	m.setFocus(fieldDeadname)

	m = press(m, tea.KeyEnter)
	if m.state != StateForm {
		t.Errorf("state = %v, want to stay on the form", m.state)
	}
	if m.err == nil || !strings.Contains(m.err.Error(), "Days") {
		t.Errorf("err = %v, want a Days error", m.err)
	}
}

func TestRun_CompletesAndReports(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(dir)
	m.inputs[fieldName].SetValue("Shoot01")
	m.inputs[fieldCams].SetValue("2")
	m.verbose = true

	o, err := m.overrides()
	if err != nil {
		t.Fatal(err)
	}
	m.state = StateRunning
	m.events = make(chan tea.Msg, 64)
	m.startRun(o)()

	for m.state == StateRunning {
		next, _ := m.Update(<-m.events)
		m = next.(Model)
	}

	if m.state != StateComplete {
		t.Fatalf("state = %v, err = %v", m.state, m.err)
	}
	if m.total == 0 || m.done != m.total {
		t.Errorf("progress = %d/%d, want complete", m.done, m.total)
	}
	if _, err := os.Stat(filepath.Join(dir, "Shoot01", "01_DAY01", "02_B_CAM")); err != nil {
		t.Errorf("camera folder missing: %v", err)
	}
	if !strings.Contains(m.View(), "Shoot01 is ready") {
		t.Errorf("completion view missing summary:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if m.state != StateForm || m.operation != model.OperationUpdate {
		t.Errorf("after r: state = %v, operation = %v", m.state, m.operation)
	}
}

func TestRenderLogs(t *testing.T) {
	m := NewModel(t.TempDir())
	m.logs = []LogEntry{
		{Message: "Created root folder Shoot01", Level: scaffold.LevelInfo},
		{Message: "Shoot01 ready", Level: scaffold.LevelSuccess},
	}

	out := m.renderLogs()
	if !strings.Contains(out, "Created root folder Shoot01") || !strings.Contains(out, "Shoot01 ready") {
		t.Errorf("renderLogs() = %q", out)
	}
}
