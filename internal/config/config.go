package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/handiism/shootdir/internal/failure"
	"github.com/handiism/shootdir/internal/model"
)

// FileName is the config file name, resolved against the working directory.
const FileName = "config.toml"

// Default returns a config with default values.
func Default() *model.Config {
	return &model.Config{
		Setup: model.ProjectSetup{
			Name:         "Project",
			Days:         1,
			Cameras:      1,
			SoundSources: 1,
		},
		FileStructure: model.FileStructure{
			FoldersList: []model.FolderTemplate{
				{Name: model.TokenDays, Parent: 0},
				{Name: model.TokenCameras, Parent: 1},
				{Name: model.TokenSoundSources, Parent: 1},
				{Name: "EDIT", Parent: 0},
				{Name: "EXPORT", Parent: 0},
			},
		},
	}
}

// Load reads a config from a TOML file.
//
// A missing file is not an error: found is false and cfg is nil. Any other
// read or parse failure is returned as a config-read error.
func Load(path string) (cfg *model.Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, failure.Wrap(failure.KindConfigRead, "read", path, err)
	}

	cfg = &model.Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, true, failure.Wrap(failure.KindConfigRead, "parse", path, err)
	}
	return cfg, true, nil
}

// Save writes the config to a TOML file with mode 0644.
//
// The deadname is a one-off override and is not written.
func Save(path string, cfg *model.Config) error {
	out := cfg.Clone()
	out.Setup.Deadname = ""

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return failure.Wrap(failure.KindConfigWrite, "encode", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return failure.Wrap(failure.KindConfigWrite, "write", path, err)
	}
	return nil
}

// Overrides holds setup values given on the command line. Nil fields were
// not given and leave the base value unchanged.
type Overrides struct {
	Name         *string
	Days         *int
	Cameras      *int
	SoundSources *int
	Deadname     *string
}

// Apply writes every given override into cfg.
func (o Overrides) Apply(cfg *model.Config) {
	if o.Name != nil {
		cfg.Setup.Name = *o.Name
	}
	if o.Days != nil {
		cfg.Setup.Days = *o.Days
	}
	if o.Cameras != nil {
		cfg.Setup.Cameras = *o.Cameras
	}
	if o.SoundSources != nil {
		cfg.Setup.SoundSources = *o.SoundSources
	}
	if o.Deadname != nil {
		cfg.Setup.Deadname = *o.Deadname
	}
}

// Resolve builds the config an operation runs with.
//
// New starts from Default(). Update starts from the stored config, or from
// Default() when there is none. Overrides are applied on top and the base
// is never modified.
func Resolve(op model.Operation, prior *model.Config, o Overrides) *model.Config {
	var cfg *model.Config
	if op == model.OperationUpdate && prior != nil {
		cfg = prior.Clone()
		cfg.Setup.Deadname = ""
	} else {
		cfg = Default()
	}
	o.Apply(cfg)
	return cfg
}
