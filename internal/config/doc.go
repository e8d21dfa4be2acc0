// Package config provides configuration management for shootdir.
//
// This package handles:
//   - Loading and saving config.toml
//   - Default configuration values
//   - Applying command-line overrides on top of a base config
//
// # Default Config
//
// Use Default() to get a project with a typical shoot layout:
//
//	cfg := config.Default()
//	// Project/
//	//   01_DAY01/
//	//     01_A_CAM/
//	//     01_A_REC/
//	//   EDIT/
//	//   EXPORT/
//
// # Loading from File
//
//	cfg, found, err := config.Load("config.toml")
//	if err != nil {
//	    // The file exists but is unreadable or malformed
//	}
//	if !found {
//	    // No stored config; not an error
//	}
//
// # Saving
//
//	cfg.Setup.Name = "Shoot02"
//	err := config.Save("config.toml", cfg)
//
// # File Format
//
//	[setup]
//	name = "Shoot01"
//	days = 2
//	cameras = 3
//	sound_sources = 1
//
//	[[file_structure.folders_list]]
//	name = "%days"
//	parent = 0
//
//	[[file_structure.folders_list]]
//	name = "%cams"
//	parent = 1
package config
