// Package reconcile decides what happens to the project root folder before
// the layout is materialized: create it, rename it from a previous name, or
// leave it alone.
//
// The decision is separated from its side effect. Decide only probes for
// existence; Apply performs the single create or rename it chose.
//
//	d := reconcile.Decide(in, dir)
//	if err := reconcile.Apply(d, dir); err != nil {
//	    return err
//	}
package reconcile

import "github.com/handiism/shootdir/internal/model"

// Action is the outcome of a reconcile decision.
type Action int

const (
	// NoOp leaves the disk untouched; the root is already in place.
	NoOp Action = iota

	// FreshCreate creates the root folder.
	FreshCreate

	// RenameFromPrior renames the root recorded in the stored config.
	RenameFromPrior

	// RenameFromDeadname renames the folder named by an explicit deadname.
	RenameFromDeadname
)

// String returns a human readable action name.
func (a Action) String() string {
	switch a {
	case FreshCreate:
		return "create"
	case RenameFromPrior:
		return "rename from stored name"
	case RenameFromDeadname:
		return "rename from deadname"
	default:
		return "no-op"
	}
}

// Input is everything the decision depends on besides the filesystem.
type Input struct {
	Operation model.Operation

	// Name is the requested root name.
	Name string

	// Deadname is the explicit previous name, or "".
	Deadname string

	// PriorLoaded is true when a stored config was read.
	PriorLoaded bool

	// PriorName is the root name recorded in the stored config.
	PriorName string
}

// Prober reports whether a name exists relative to the project's parent directory.
type Prober interface {
	Exists(name string) bool
}

// Decision is the chosen action and the names it applies to.
type Decision struct {
	Action Action

	// From is the folder being renamed. Empty unless the action is a rename.
	From string

	// To is the requested root name.
	To string
}

// Decide picks the root action. Rules are evaluated in priority order:
//  1. A deadname is set: rename it if it exists, otherwise create the root
//     if missing, otherwise do nothing. The stored config is not consulted.
//  2. An update with a stored config whose root exists under a different
//     name: rename it.
//  3. The root does not exist: create it.
//  4. Otherwise do nothing.
//
// A deadname equal to the requested name is treated as already in place.
func Decide(in Input, probe Prober) Decision {
	d := Decision{Action: NoOp, To: in.Name}

	if in.Deadname != "" {
		if in.Deadname != in.Name && probe.Exists(in.Deadname) {
			d.Action = RenameFromDeadname
			d.From = in.Deadname
		} else if !probe.Exists(in.Name) {
			d.Action = FreshCreate
		}
		return d
	}

	if in.Operation == model.OperationUpdate && in.PriorLoaded &&
		in.PriorName != "" && in.PriorName != in.Name && probe.Exists(in.PriorName) {
		d.Action = RenameFromPrior
		d.From = in.PriorName
		return d
	}

	if !probe.Exists(in.Name) {
		d.Action = FreshCreate
	}
	return d
}

// FS is the filesystem surface Apply needs.
type FS interface {
	Mkdir(name string) error
	Rename(from, to string) error
}

// Apply performs the decision. Failures are returned as-is; nothing is retried.
func Apply(d Decision, fs FS) error {
	switch d.Action {
	case FreshCreate:
		return fs.Mkdir(d.To)
	case RenameFromPrior, RenameFromDeadname:
		return fs.Rename(d.From, d.To)
	default:
		return nil
	}
}
