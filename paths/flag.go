package paths

import (
	"flag"
)

// SetupOutputDirFlag creates a new string flag with the passed name with a
// sane default for the repo-relative output directory relDir, located using
// the LocateOutputDir function.
func SetupOutputDirFlag(relDir, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, LocateOutputDir(relDir), "Directory to write "+relDir+" into")
}
