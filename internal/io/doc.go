// Package ioutils provides the filesystem operations shootdir performs.
//
// All paths handed to this package are relative to a base directory (the
// invocation directory by default). Only directories are touched: they
// are created or renamed, never deleted.
//
// # Directory Operations
//
//	dir := ioutils.NewDir(".")
//
//	dir.Exists("Shoot01")                // true if anything named Shoot01 exists
//	err := dir.Mkdir("Shoot02")          // create one directory
//	err = dir.Rename("Shoot01", "Shoot02")
//
// # Materialization
//
// Materializer creates every missing directory of a computed layout and
// reports which ones were created and which already existed:
//
//	m := ioutils.NewMaterializer(dir, nil)
//	result, err := m.Materialize(paths)
//	fmt.Println(len(result.Created), "created")
//
// Running it again on the same paths creates nothing and returns no error.
package ioutils
