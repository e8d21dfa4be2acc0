// Package layout expands a folder template tree into the concrete list of
// directories a project needs.
//
// Build walks one template's ancestor chain up to the project root and
// returns every path that template produces; placeholders along the chain
// multiply the result (days inside cameras gives days x cameras paths).
// Walk does this for every template and prepends the bare root.
//
//	paths, err := layout.Walk(cfg)
//	// ["Shoot01", "Shoot01/01_A_CAM", "Shoot01/02_B_CAM"]
//
// Paths are relative to the directory the project root lives in.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/handiism/shootdir/internal/failure"
	"github.com/handiism/shootdir/internal/model"
)

// MaxDepth bounds the number of ancestor hops Build follows. Validate
// rejects cycles first; the bound guards Build when it is called directly.
const MaxDepth = 100

// Validate checks the template list: literal names must be single path
// segments, parent references must point at an existing template, and
// every ancestor chain must end at the project root.
func Validate(fs model.FileStructure) error {
	list := fs.FoldersList
	for i, t := range list {
		if !model.ParseSegment(t.Name).IsPlaceholder() {
			if err := model.ValidateName(templateRef(i), t.Name); err != nil {
				return err
			}
		}
		if t.Parent < 0 || t.Parent > len(list) {
			return failure.New(failure.KindDanglingParent, "validate", templateRef(i),
				"parent %d does not exist (%d templates)", t.Parent, len(list))
		}
	}

	// reachesRoot[j] is set once j's chain is known to end at parent 0.
	reachesRoot := make([]bool, len(list))
	for i := range list {
		seen := make(map[int]bool)
		for j := i; !reachesRoot[j]; {
			if seen[j] {
				return failure.New(failure.KindStructuralCycle, "validate", templateRef(i),
					"ancestor chain loops back to %s", templateRef(j))
			}
			seen[j] = true
			p, ok := fs.ParentIndex(j)
			if !ok {
				break
			}
			j = p
		}
		for j := range seen {
			reachesRoot[j] = true
		}
	}
	return nil
}

// Build returns every path produced by the template at index i, rooted at
// setup.Name.
//
// The chain is walked from the template towards the root. Each step
// resolves the current name; a placeholder replaces the working set with
// the product of its names and the existing suffixes, a literal is
// prepended to every suffix.
//
// Example:
//
//	// [{%days 0} {%cams 1}], Days: 2, Cameras: 3
//	paths, _ := Build(setup, fs, 1)
//	// 6 paths: Shoot01/01_DAY01/01_A_CAM ... Shoot01/02_DAY02/03_C_CAM
func Build(setup model.ProjectSetup, fs model.FileStructure, i int) ([]string, error) {
	list := fs.FoldersList
	if i < 0 || i >= len(list) {
		return nil, failure.New(failure.KindDanglingParent, "build", templateRef(i), "no such template")
	}

	suffixes := [][]string{{}}
	cur := i
	for hops := 0; ; hops++ {
		if hops >= MaxDepth {
			return nil, failure.New(failure.KindStructuralCycle, "build", templateRef(i),
				"ancestor chain exceeds %d hops", MaxDepth)
		}

		names, err := model.Resolve(list[cur].Name, setup)
		if err != nil {
			return nil, err
		}

		next := make([][]string, 0, len(names)*len(suffixes))
		for _, name := range names {
			for _, suffix := range suffixes {
				next = append(next, append([]string{name}, suffix...))
			}
		}
		suffixes = next

		p, ok := fs.ParentIndex(cur)
		if !ok {
			break
		}
		if p < 0 || p >= len(list) {
			return nil, failure.New(failure.KindDanglingParent, "build", templateRef(cur),
				"parent %d does not exist", p+1)
		}
		cur = p
	}

	paths := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		paths = append(paths, filepath.Join(append([]string{setup.Name}, suffix...)...))
	}
	return paths, nil
}

// Walk validates cfg and returns the full ordered list of directories for
// the project: the root first, then each template's paths in list order.
func Walk(cfg *model.Config) ([]string, error) {
	if err := cfg.Setup.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(cfg.FileStructure); err != nil {
		return nil, err
	}

	paths := []string{cfg.Setup.Name}
	for i := range cfg.FileStructure.FoldersList {
		built, err := Build(cfg.Setup, cfg.FileStructure, i)
		if err != nil {
			return nil, err
		}
		paths = append(paths, built...)
	}
	return paths, nil
}

func templateRef(i int) string {
	return fmt.Sprintf("template #%d", i+1)
}
