package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/shootdir/internal/failure"
	"github.com/handiism/shootdir/internal/model"
)

func TestLoad_Missing(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if found || cfg != nil {
		t.Errorf("Load() = %v, %v, want nil, false", cfg, found)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[setup\nname = "), 0644); err != nil {
		t.Fatal(err)
	}

	_, found, err := Load(path)
	if !found {
		t.Error("found should be true for an existing file")
	}
	if !failure.Is(err, failure.KindConfigRead) {
		t.Errorf("Load() error = %v, want config read error", err)
	}
}

func TestLoad_Parses(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[setup]
name = "Shoot01"
days = 2
cameras = 3
sound_sources = 1

[[file_structure.folders_list]]
name = "%days"
parent = 0

[[file_structure.folders_list]]
name = "%cams"
parent = 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, found, err := Load(path)
	if err != nil || !found {
		t.Fatalf("Load() = %v, %v", found, err)
	}
	if cfg.Setup.Name != "Shoot01" || cfg.Setup.Days != 2 || cfg.Setup.Cameras != 3 || cfg.Setup.SoundSources != 1 {
		t.Errorf("Setup = %+v", cfg.Setup)
	}
	folders := cfg.FileStructure.FoldersList
	if len(folders) != 2 || folders[1].Name != "%cams" || folders[1].Parent != 1 {
		t.Errorf("FoldersList = %+v", folders)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Setup.Name = "Shoot02"
	cfg.Setup.Deadname = "OldProj"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "deadname") {
		t.Errorf("deadname must not be persisted:\n%s", data)
	}
	if cfg.Setup.Deadname != "OldProj" {
		t.Error("Save() must not modify the caller's config")
	}

	loaded, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Setup.Name != "Shoot02" {
		t.Errorf("Name = %q, want Shoot02", loaded.Setup.Name)
	}
	if len(loaded.FileStructure.FoldersList) != len(cfg.FileStructure.FoldersList) {
		t.Errorf("FoldersList = %+v", loaded.FileStructure.FoldersList)
	}
}

func TestSave_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", FileName)

	err := Save(path, Default())
	if !failure.Is(err, failure.KindConfigWrite) {
		t.Errorf("Save() error = %v, want config write error", err)
	}
}

func TestResolve(t *testing.T) {
	name := "Shoot02"
	cams := 4
	prior := &model.Config{
		Setup: model.ProjectSetup{Name: "Shoot01", Days: 3, Cameras: 2},
		FileStructure: model.FileStructure{FoldersList: []model.FolderTemplate{
			{Name: "%cams", Parent: 0},
		}},
	}

	t.Run("update keeps stored values", func(t *testing.T) {
		cfg := Resolve(model.OperationUpdate, prior, Overrides{Name: &name, Cameras: &cams})
		if cfg.Setup.Name != "Shoot02" || cfg.Setup.Cameras != 4 || cfg.Setup.Days != 3 {
			t.Errorf("Setup = %+v", cfg.Setup)
		}
		if len(cfg.FileStructure.FoldersList) != 1 {
			t.Errorf("update should keep the stored structure, got %+v", cfg.FileStructure)
		}
		if prior.Setup.Name != "Shoot01" {
			t.Error("Resolve() must not modify the stored config")
		}
	})

	t.Run("new ignores stored values", func(t *testing.T) {
		cfg := Resolve(model.OperationNew, prior, Overrides{Name: &name})
		if cfg.Setup.Days != Default().Setup.Days {
			t.Errorf("Days = %d, want default", cfg.Setup.Days)
		}
		if len(cfg.FileStructure.FoldersList) != len(Default().FileStructure.FoldersList) {
			t.Error("new should use the default structure")
		}
	})

	t.Run("update without stored config", func(t *testing.T) {
		cfg := Resolve(model.OperationUpdate, nil, Overrides{Name: &name})
		if cfg.Setup.Name != "Shoot02" || cfg.Setup.Days != Default().Setup.Days {
			t.Errorf("Setup = %+v", cfg.Setup)
		}
	})
}
