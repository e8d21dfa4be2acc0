// Package model defines the core data structures used throughout shootdir.
//
// # Config
//
// Config is the unit of persistence. It pairs the project parameters with
// the folder template tree:
//
//	cfg := &model.Config{
//	    Setup: model.ProjectSetup{Name: "Shoot01", Days: 2, Cameras: 3},
//	    FileStructure: model.FileStructure{
//	        FoldersList: []model.FolderTemplate{
//	            {Name: "%days", Parent: 0},
//	            {Name: "%cams", Parent: 1},
//	        },
//	    },
//	}
//
// # Folder Templates
//
// A FolderTemplate attaches to its parent by 1-based position in
// FoldersList. Parent 0 means the template sits directly under the project
// root.
//
// # Placeholders
//
// Three reserved template names expand into several directories:
//
//	%days          01_DAY01, 02_DAY02, ...
//	%cams          01_A_CAM, 02_B_CAM, ... (at most 26)
//	%soundsources  01_A_REC, 02_B_REC, ... (at most 26)
//
// Any other name is used verbatim. Use ParseSegment to classify a name and
// Resolve to expand it against a ProjectSetup.
package model
