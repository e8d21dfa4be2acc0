package model

import (
	"regexp"

	"github.com/handiism/shootdir/internal/failure"
)

// Characters not allowed in a folder name: < > : " / \ | ? * and control characters.
var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// ValidateName checks that name is usable as a single path segment.
//
// what describes the name in the returned error, e.g. "project name".
func ValidateName(what, name string) error {
	switch {
	case name == "":
		return failure.New(failure.KindInvalid, "validate", what, "must not be empty")
	case name == "." || name == "..":
		return failure.New(failure.KindInvalid, "validate", what, "%q is not a folder name", name)
	case invalidNameChars.MatchString(name):
		return failure.New(failure.KindInvalid, "validate", what, "%q contains a path separator or reserved character", name)
	}
	return nil
}

// Validate checks the setup values: the root name and deadname must be
// single path segments and counts must not be negative.
func (s ProjectSetup) Validate() error {
	if err := ValidateName("project name", s.Name); err != nil {
		return err
	}
	if s.Deadname != "" {
		if err := ValidateName("deadname", s.Deadname); err != nil {
			return err
		}
	}
	counts := []struct {
		what string
		n    int
	}{
		{"days", s.Days},
		{"cameras", s.Cameras},
		{"sound sources", s.SoundSources},
	}
	for _, c := range counts {
		if c.n < 0 {
			return failure.New(failure.KindInvalid, "validate", c.what, "must not be negative, got %d", c.n)
		}
	}
	return nil
}
