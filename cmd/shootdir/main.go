package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/handiism/shootdir/internal/config"
	"github.com/handiism/shootdir/internal/failure"
	"github.com/handiism/shootdir/internal/model"
	"github.com/handiism/shootdir/internal/scaffold"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

const usage = `shootdir - scaffold and maintain production project folders

Usage:
  shootdir new    [options]   start a project from the default layout
  shootdir update [options]   apply options on top of config.toml

Options:
  -name NAME        project root folder name
  -days N           number of shooting days (%days)
  -cams N           number of cameras (%cams, at most 26)
  -sound N          number of sound recorders (%soundsources, at most 26)
  -deadname OLD     rename folder OLD to the project name
  -dir DIR          working directory holding the project and config.toml (default ".")
  -dry-run          show what would change without touching anything
  -verbose          show every folder
  -no-progress      disable the progress bar

For interactive mode, use: shootdir-tui
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		io.WriteString(stdout, usage)
		return failure.ExitOK
	}

	var op model.Operation
	switch args[0] {
	case "new":
		op = model.OperationNew
	case "update":
		op = model.OperationUpdate
	default:
		io.WriteString(stdout, usage)
		return failure.ExitOK
	}

	opts, err := parseFlags(op.String(), args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			io.WriteString(stdout, usage)
			return failure.ExitOK
		}
		fmt.Fprintln(stderr, errorStyle.Render("error: "+err.Error()))
		return failure.ExitConfigRead
	}

	req := scaffold.Request{Operation: op, Overrides: opts.overrides}
	out := newPrinter(stdout, stderr, opts)
	manager := scaffold.NewManager(opts.dir, out.handle)

	fmt.Fprintln(stdout, titleStyle.Render("shootdir "+op.String()))

	if opts.dryRun {
		report, err := manager.Plan(req)
		if err != nil {
			fmt.Fprintln(stderr, errorStyle.Render("error: "+err.Error()))
			return failure.ExitCode(err)
		}
		printPlan(stdout, report)
		return failure.ExitOK
	}

	_, err = manager.Run(req)
	out.finish()
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("error: "+err.Error()))
		return failure.ExitCode(err)
	}
	fmt.Fprintln(stdout, dimStyle.Render(fmt.Sprintf("config saved to %s", manager.ConfigPath())))
	return failure.ExitOK
}

type options struct {
	overrides  config.Overrides
	dir        string
	dryRun     bool
	verbose    bool
	noProgress bool
}

// parseFlags parses subcommand flags. Only flags that were given become overrides.
func parseFlags(name string, args []string) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		nameFlag     = fs.String("name", "", "")
		daysFlag     = fs.Int("days", 0, "")
		camsFlag     = fs.Int("cams", 0, "")
		soundFlag    = fs.Int("sound", 0, "")
		deadnameFlag = fs.String("deadname", "", "")
		opts         = &options{}
	)
	fs.StringVar(&opts.dir, "dir", ".", "")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "")
	fs.BoolVar(&opts.verbose, "verbose", false, "")
	fs.BoolVar(&opts.noProgress, "no-progress", false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			opts.overrides.Name = nameFlag
		case "days":
			opts.overrides.Days = daysFlag
		case "cams":
			opts.overrides.Cameras = camsFlag
		case "sound":
			opts.overrides.SoundSources = soundFlag
		case "deadname":
			opts.overrides.Deadname = deadnameFlag
		}
	})
	return opts, nil
}

// printer renders progress events to the terminal.
type printer struct {
	stdout, stderr io.Writer
	verbose        bool
	showBar        bool
	bar            *progressbar.ProgressBar
}

func newPrinter(stdout, stderr io.Writer, opts *options) *printer {
	return &printer{
		stdout:  stdout,
		stderr:  stderr,
		verbose: opts.verbose,
		showBar: !opts.noProgress && !opts.verbose && !opts.dryRun,
	}
}

func (p *printer) handle(event scaffold.ProgressEvent) {
	if event.Total > 0 && p.showBar {
		if p.bar == nil {
			p.bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetWriter(p.stderr),
				progressbar.OptionSetDescription("Creating folders"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = p.bar.Set(event.Done)
	}

	if event.Level == scaffold.LevelVerbose && !p.verbose {
		return
	}

	var line string
	switch event.Level {
	case scaffold.LevelError:
		// Errors are printed once by run.
		return
	case scaffold.LevelWarning:
		line = warningStyle.Render("! " + event.Message)
	case scaffold.LevelSuccess:
		p.finish()
		line = successStyle.Render("✓ " + event.Message)
	case scaffold.LevelInfo:
		line = infoStyle.Render("› " + event.Message)
	default:
		line = dimStyle.Render("  " + event.Message)
	}
	fmt.Fprintln(p.stdout, line)
}

func (p *printer) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}

func printPlan(w io.Writer, report *scaffold.Report) {
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("Root: %s (%s)", report.Decision.To, report.Decision.Action)))
	if report.Decision.From != "" {
		fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("  from %s", report.Decision.From)))
	}

	created := make(map[string]bool, len(report.Created))
	for _, p := range report.Created {
		created[p] = true
	}
	for _, p := range report.Paths {
		if created[p] {
			fmt.Fprintln(w, successStyle.Render("+ "+p))
			delete(created, p)
		} else {
			fmt.Fprintln(w, dimStyle.Render("= "+p))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("[Dry run] %d to create, %d already present", len(report.Created), len(report.Existing))))
}
