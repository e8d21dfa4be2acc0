package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/shootdir/internal/config"
	ioutils "github.com/handiism/shootdir/internal/io"
	"github.com/handiism/shootdir/internal/layout"
	"github.com/handiism/shootdir/internal/model"
	"github.com/handiism/shootdir/internal/reconcile"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a run progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Done and Total are set for per-directory events during materialization.
	Done  int
	Total int
}

// Request describes one invocation.
type Request struct {
	Operation model.Operation
	Overrides config.Overrides
}

// Report summarizes a run or a plan.
type Report struct {
	// Config is the config the run used and persisted.
	Config *model.Config

	// PriorLoaded is true when config.toml existed.
	PriorLoaded bool

	// Decision is the root action taken (or planned).
	Decision reconcile.Decision

	// Paths is the full computed layout, root first.
	Paths []string

	// Created and Existing split Paths by whether the run created them.
	Created  []string
	Existing []string

	// DryRun is true for reports produced by Plan.
	DryRun bool
}

// Manager coordinates scaffold runs in a working directory.
type Manager struct {
	dir        *ioutils.Dir
	configPath string
	onProgress func(ProgressEvent)
}

// NewManager creates a Manager for baseDir. config.toml is read from and
// written to baseDir. onProgress may be nil.
func NewManager(baseDir string, onProgress func(ProgressEvent)) *Manager {
	dir := ioutils.NewDir(baseDir)
	return &Manager{
		dir:        dir,
		configPath: dir.Path(config.FileName),
		onProgress: onProgress,
	}
}

// ConfigPath returns the path of the config file the Manager uses.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Run performs the request against the disk and persists the config.
func (m *Manager) Run(req Request) (*Report, error) {
	report, prior, err := m.prepare(req)
	if err != nil {
		return report, err
	}
	cfg := report.Config

	if err := reconcile.Apply(report.Decision, m.dir); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not prepare root folder: %v", err), Level: LevelError})
		return report, err
	}
	m.reportDecision(report.Decision)

	// Record the new root name before materializing so a later failure
	// does not leave config.toml pointing at a folder that was renamed.
	checkpoint := prior
	if checkpoint == nil {
		checkpoint = config.Default()
	}
	checkpoint = checkpoint.Clone()
	checkpoint.Setup.Name = cfg.Setup.Name
	if err := config.Save(m.configPath, checkpoint); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not record root name: %v", err), Level: LevelError})
		return report, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Recorded root name %q in %s", cfg.Setup.Name, config.FileName), Level: LevelVerbose})

	materializer := ioutils.NewMaterializer(m.dir, func(done, total int, path string, created bool) {
		msg := "Exists: " + path
		if created {
			msg = "Created: " + path
		}
		m.progress(ProgressEvent{Message: msg, Level: LevelVerbose, Done: done, Total: total})
	})
	result, err := materializer.Materialize(report.Paths)
	if result != nil {
		report.Created = result.Created
		report.Existing = result.Existing
	}
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not create folders: %v", err), Level: LevelError})
		return report, err
	}

	if err := config.Save(m.configPath, cfg); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not save config: %v", err), Level: LevelError})
		return report, err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("%s ready: %d folders created, %d already present", cfg.Setup.Name, len(report.Created), len(report.Existing)),
		Level:   LevelSuccess,
	})
	return report, nil
}

// Plan computes what Run would do without changing anything.
func (m *Manager) Plan(req Request) (*Report, error) {
	report, _, err := m.prepare(req)
	if err != nil {
		return report, err
	}
	report.DryRun = true

	// After a rename the new root holds the old root's contents, so probe
	// the old location.
	exists := m.dir.Exists
	if d := report.Decision; d.From != "" {
		exists = func(path string) bool {
			return m.dir.Exists(renameRoot(path, d.To, d.From))
		}
	}
	if report.Decision.Action == reconcile.FreshCreate {
		exists = func(string) bool { return false }
	}

	result := ioutils.NewMaterializer(m.dir, nil).Plan(report.Paths, exists)
	report.Created = result.Created
	report.Existing = result.Existing
	return report, nil
}

// prepare loads the stored config, resolves the requested one, computes the
// layout and decides the root action. Nothing is written.
func (m *Manager) prepare(req Request) (*Report, *model.Config, error) {
	prior, found, err := config.Load(m.configPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Could not read %s: %v", config.FileName, err), Level: LevelError})
		return nil, nil, err
	}
	if found {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %s (root %q)", config.FileName, prior.Setup.Name), Level: LevelVerbose})
	}

	cfg := config.Resolve(req.Operation, prior, req.Overrides)
	report := &Report{Config: cfg, PriorLoaded: found}

	paths, err := layout.Walk(cfg)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Invalid folder layout: %v", err), Level: LevelError})
		return report, prior, err
	}
	report.Paths = paths
	m.progress(ProgressEvent{Message: fmt.Sprintf("Layout has %d folders", len(paths)), Level: LevelVerbose})

	in := reconcile.Input{
		Operation: req.Operation,
		Name:      cfg.Setup.Name,
		Deadname:  cfg.Setup.Deadname,
	}
	if prior != nil {
		in.PriorLoaded = true
		in.PriorName = prior.Setup.Name
	}
	report.Decision = reconcile.Decide(in, m.dir)
	return report, prior, nil
}

func (m *Manager) reportDecision(d reconcile.Decision) {
	switch d.Action {
	case reconcile.FreshCreate:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Created root folder %s", d.To), Level: LevelInfo})
	case reconcile.RenameFromPrior, reconcile.RenameFromDeadname:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %s to %s", d.From, d.To), Level: LevelInfo})
	default:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Root folder %s already in place", d.To), Level: LevelVerbose})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

// renameRoot swaps the first path segment from to for replacement.
func renameRoot(path, from, replacement string) string {
	if path == from {
		return replacement
	}
	prefix := from + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return filepath.Join(replacement, strings.TrimPrefix(path, prefix))
	}
	return path
}
