package ioutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/shootdir/internal/failure"
)

func testPaths() []string {
	return []string{
		"Shoot01",
		filepath.Join("Shoot01", "01_A_CAM"),
		filepath.Join("Shoot01", "02_B_CAM"),
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	dir := NewDir(t.TempDir())
	m := NewMaterializer(dir, nil)

	first, err := m.Materialize(testPaths())
	if err != nil {
		t.Fatalf("first Materialize() error: %v", err)
	}
	if len(first.Created) != 3 {
		t.Errorf("first pass created %d, want 3", len(first.Created))
	}

	second, err := m.Materialize(testPaths())
	if err != nil {
		t.Fatalf("second Materialize() error: %v", err)
	}
	if len(second.Created) != 0 {
		t.Errorf("second pass created %v, want none", second.Created)
	}
	if len(second.Existing) != 3 {
		t.Errorf("second pass found %d existing, want 3", len(second.Existing))
	}
}

func TestMaterialize_ChildBeforeParent(t *testing.T) {
	dir := NewDir(t.TempDir())
	m := NewMaterializer(dir, nil)

	paths := []string{"P", filepath.Join("P", "FOOTAGE", "RAW"), filepath.Join("P", "FOOTAGE")}
	result, err := m.Materialize(paths)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	if len(result.Created) != 2 || len(result.Existing) != 1 {
		t.Errorf("created %v, existing %v", result.Created, result.Existing)
	}
}

func TestMaterialize_StopsOnFirstError(t *testing.T) {
	base := t.TempDir()
	dir := NewDir(base)

	// A regular file blocks the directory below it.
	if err := os.MkdirAll(filepath.Join(base, "P"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "P", "EDIT"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths := []string{"P", filepath.Join("P", "A"), filepath.Join("P", "EDIT", "PROJECT"), filepath.Join("P", "B")}
	result, err := NewMaterializer(dir, nil).Materialize(paths)
	if !failure.Is(err, failure.KindFilesystem) {
		t.Fatalf("Materialize() error = %v, want filesystem error", err)
	}
	if fe := err.(*failure.Error); fe.Path != filepath.Join("P", "EDIT", "PROJECT") {
		t.Errorf("error path = %q, want the offending path", fe.Path)
	}
	if len(result.Created) != 1 || !dir.IsDir(filepath.Join("P", "A")) {
		t.Errorf("directories before the failure should remain, got %v", result.Created)
	}
	if dir.Exists(filepath.Join("P", "B")) {
		t.Error("paths after the failure should not be created")
	}
}

func TestMaterialize_ReportsSteps(t *testing.T) {
	dir := NewDir(t.TempDir())

	var steps []int
	m := NewMaterializer(dir, func(done, total int, path string, created bool) {
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		steps = append(steps, done)
	})
	if _, err := m.Materialize(testPaths()); err != nil {
		t.Fatal(err)
	}
	if len(steps) != 3 || steps[2] != 3 {
		t.Errorf("steps = %v, want [1 2 3]", steps)
	}
}

func TestPlan_TouchesNothing(t *testing.T) {
	dir := NewDir(t.TempDir())
	m := NewMaterializer(dir, nil)

	result := m.Plan(testPaths(), nil)
	if len(result.Created) != 3 {
		t.Errorf("Plan() would create %d, want 3", len(result.Created))
	}
	if dir.Exists("Shoot01") {
		t.Error("Plan() must not create directories")
	}

	result = m.Plan(testPaths(), func(string) bool { return true })
	if len(result.Created) != 0 {
		t.Errorf("Plan() with everything present would create %v", result.Created)
	}
}
