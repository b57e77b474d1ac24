// Package build provides domain entities for build information.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info for --version output. Unset fields are omitted.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	goVersion := i.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	s := version
	if i.Commit != "" {
		s += fmt.Sprintf(" (%s)", i.Commit)
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	return s + " " + goVersion
}
