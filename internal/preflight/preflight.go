// Package preflight verifies that a run's directories are usable before any
// file is touched.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckSourceDir verifies that the source tree exists and can be read and
// traversed.
func CheckSourceDir(path string) Result {
	return checkDirectory("Source directory", path, unix.R_OK|unix.X_OK)
}

// CheckDestinationDir verifies that the archive root exists and can be
// written into.
func CheckDestinationDir(path string) Result {
	return checkDirectory("Destination directory", path, unix.R_OK|unix.W_OK|unix.X_OK)
}

// CheckLogDir verifies that the log directory can be written into.
func CheckLogDir(path string) Result {
	return checkDirectory("Log directory", path, unix.W_OK|unix.X_OK)
}

func checkDirectory(name, path string, mode uint32) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (access ok)", path)}
}

// RunAll executes every applicable check for an organize run.
func RunAll(sourceDir, destinationDir, logDir string) []Result {
	results := []Result{
		CheckSourceDir(sourceDir),
		CheckDestinationDir(destinationDir),
	}
	if logDir != "" {
		results = append(results, CheckLogDir(logDir))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
