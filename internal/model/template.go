package model

import (
	"fmt"

	"github.com/handiism/shootdir/internal/failure"
)

// MaxLetteredItems is the number of items a lettered placeholder can label (A-Z).
const MaxLetteredItems = 26

// FolderTemplate describes one directory, or a family of directories when
// Name is a placeholder, relative to its parent.
type FolderTemplate struct {
	// Name is a literal folder name or one of %days, %cams, %soundsources.
	Name string `toml:"name"`

	// Parent is the 1-based position of the parent template in
	// FoldersList. 0 attaches the template to the project root.
	Parent int `toml:"parent"`
}

// IsRootChild returns true if the template attaches directly to the project root.
func (t FolderTemplate) IsRootChild() bool {
	return t.Parent == 0
}

// FileStructure is the ordered template list. Position+1 is a template's identity.
type FileStructure struct {
	FoldersList []FolderTemplate `toml:"folders_list"`
}

// ParentIndex returns the 0-based index of the template's parent and
// false when the template attaches to the root.
func (fs FileStructure) ParentIndex(i int) (int, bool) {
	p := fs.FoldersList[i].Parent
	if p == 0 {
		return 0, false
	}
	return p - 1, true
}

// SegmentKind classifies a template name.
type SegmentKind int

const (
	// SegmentLiteral is used verbatim.
	SegmentLiteral SegmentKind = iota

	// SegmentDays expands to one folder per shooting day.
	SegmentDays

	// SegmentCameras expands to one lettered folder per camera.
	SegmentCameras

	// SegmentSoundSources expands to one lettered folder per recorder.
	SegmentSoundSources
)

// Reserved placeholder tokens.
const (
	TokenDays         = "%days"
	TokenCameras      = "%cams"
	TokenSoundSources = "%soundsources"
)

// ParseSegment classifies a template name.
func ParseSegment(name string) SegmentKind {
	switch name {
	case TokenDays:
		return SegmentDays
	case TokenCameras:
		return SegmentCameras
	case TokenSoundSources:
		return SegmentSoundSources
	default:
		return SegmentLiteral
	}
}

// IsPlaceholder returns true for every kind except SegmentLiteral.
func (k SegmentKind) IsPlaceholder() bool {
	return k != SegmentLiteral
}

// Token returns the reserved token of a placeholder kind, or "" for literals.
func (k SegmentKind) Token() string {
	switch k {
	case SegmentDays:
		return TokenDays
	case SegmentCameras:
		return TokenCameras
	case SegmentSoundSources:
		return TokenSoundSources
	default:
		return ""
	}
}

// Resolve expands a template name into the folder names it stands for.
//
// Literal names resolve to themselves. Placeholders resolve to n names,
// where n is the matching count in setup:
//   - %days         {NN}_DAY{NN}
//   - %cams         {NN}_{LETTER}_CAM
//   - %soundsources {NN}_{LETTER}_REC
//
// NN is the 1-based index zero-padded to two digits. Lettered kinds fail
// with a capacity error when n exceeds MaxLetteredItems.
//
// Example:
//
//	names, _ := Resolve("%cams", ProjectSetup{Cameras: 2})
//	// names = ["01_A_CAM", "02_B_CAM"]
func Resolve(name string, setup ProjectSetup) ([]string, error) {
	kind := ParseSegment(name)
	if !kind.IsPlaceholder() {
		return []string{name}, nil
	}
	return ResolveKind(kind, setup.Count(kind))
}

// ResolveKind expands a placeholder kind into n folder names.
func ResolveKind(kind SegmentKind, n int) ([]string, error) {
	if n < 0 {
		return nil, failure.New(failure.KindInvalid, "resolve "+kind.Token(), "", "negative count %d", n)
	}

	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		switch kind {
		case SegmentDays:
			names = append(names, fmt.Sprintf("%02d_DAY%02d", i, i))
		case SegmentCameras, SegmentSoundSources:
			letter, ok := letterFor(i)
			if !ok {
				return nil, failure.New(failure.KindCapacity, "resolve "+kind.Token(), "",
					"item %d exceeds the limit of %d lettered folders", i, MaxLetteredItems)
			}
			suffix := "CAM"
			if kind == SegmentSoundSources {
				suffix = "REC"
			}
			names = append(names, fmt.Sprintf("%02d_%c_%s", i, letter, suffix))
		}
	}
	return names, nil
}

// letterFor returns the alphabetic label for a 1-based position.
func letterFor(i int) (rune, bool) {
	if i < 1 || i > MaxLetteredItems {
		return 0, false
	}
	return rune('A' + i - 1), true
}
