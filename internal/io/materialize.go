package ioutils

// Result lists what a materialization pass did.
type Result struct {
	// Created holds the paths that did not exist and were created.
	Created []string

	// Existing holds the paths that were already present.
	Existing []string
}

// Materializer creates the directories of a computed layout.
type Materializer struct {
	dir *Dir

	// onStep is called after each path with the running count.
	onStep func(done, total int, path string, created bool)
}

// NewMaterializer creates a Materializer writing under dir. onStep may be nil.
func NewMaterializer(dir *Dir, onStep func(done, total int, path string, created bool)) *Materializer {
	return &Materializer{dir: dir, onStep: onStep}
}

// Materialize creates every path that does not exist yet, in order.
//
// Missing parents are created along with the path, so a template listed
// before its parent still materializes. The first failure aborts the pass;
// directories created before it are left in place.
func (m *Materializer) Materialize(paths []string) (*Result, error) {
	result := &Result{}
	for i, path := range paths {
		created := false
		if m.dir.Exists(path) {
			result.Existing = append(result.Existing, path)
		} else {
			if err := m.dir.EnsureDir(path); err != nil {
				return result, err
			}
			result.Created = append(result.Created, path)
			created = true
		}
		if m.onStep != nil {
			m.onStep(i+1, len(paths), path, created)
		}
	}
	return result, nil
}

// Plan reports which paths Materialize would create without touching the
// filesystem. exists overrides the existence probe when non-nil.
func (m *Materializer) Plan(paths []string, exists func(string) bool) *Result {
	if exists == nil {
		exists = m.dir.Exists
	}
	result := &Result{}
	seen := make(map[string]bool)
	for _, path := range paths {
		if exists(path) || seen[path] {
			result.Existing = append(result.Existing, path)
			continue
		}
		seen[path] = true
		result.Created = append(result.Created, path)
	}
	return result
}
