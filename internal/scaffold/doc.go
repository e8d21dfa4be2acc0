// Package scaffold runs a shootdir invocation end to end.
//
// # Manager
//
// The Manager coordinates one run:
//
//  1. Load the stored config.toml, if any
//  2. Build the requested config (defaults or stored values plus overrides)
//  3. Compute and validate the full directory layout
//  4. Create or rename the project root
//  5. Record the new root name in config.toml
//  6. Create every missing directory
//  7. Write the requested config to config.toml
//
// Every step runs in order on the calling goroutine. The first failure
// stops the run; directories created before it stay on disk.
//
// # Basic Usage
//
//	manager := scaffold.NewManager(".", func(event scaffold.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	report, err := manager.Run(scaffold.Request{
//	    Operation: model.OperationUpdate,
//	    Overrides: config.Overrides{Name: &name},
//	})
//	if err != nil {
//	    os.Exit(failure.ExitCode(err))
//	}
//
// # Dry Run
//
// Plan performs steps 1-3 and reports the root decision and the directories
// that would be created, without touching the disk or config.toml.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Done    int           // directories processed so far
//	    Total   int           // directories in the layout
//	}
package scaffold
