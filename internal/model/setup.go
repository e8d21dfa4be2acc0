package model

// ProjectSetup holds the parameters of one production project.
type ProjectSetup struct {
	// Name is the project root folder name. Must be a single path segment.
	Name string `toml:"name"`

	// Days is the number of shooting days expanded by %days.
	Days int `toml:"days"`

	// Cameras is the number of cameras expanded by %cams.
	Cameras int `toml:"cameras"`

	// SoundSources is the number of recorders expanded by %soundsources.
	SoundSources int `toml:"sound_sources"`

	// Deadname is a previous root folder name to rename from.
	// Empty means no override. Never persisted.
	Deadname string `toml:"deadname,omitempty"`
}

// Count returns the setup count a placeholder kind expands by.
// Literal segments always count as one.
func (s ProjectSetup) Count(kind SegmentKind) int {
	switch kind {
	case SegmentDays:
		return s.Days
	case SegmentCameras:
		return s.Cameras
	case SegmentSoundSources:
		return s.SoundSources
	default:
		return 1
	}
}

// Config is the persisted state of a project: its setup and folder tree.
type Config struct {
	Setup         ProjectSetup  `toml:"setup"`
	FileStructure FileStructure `toml:"file_structure"`
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.FileStructure.FoldersList = append([]FolderTemplate(nil), c.FileStructure.FoldersList...)
	return &clone
}

// Operation is the kind of invocation being performed.
type Operation int

const (
	// OperationNew builds a fresh config from defaults and arguments.
	OperationNew Operation = iota

	// OperationUpdate applies arguments on top of the stored config.
	OperationUpdate
)

// String returns the command name of the operation.
func (o Operation) String() string {
	if o == OperationUpdate {
		return "update"
	}
	return "new"
}
