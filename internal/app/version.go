package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime may be set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/genealogy-backend/internal/app.Version=1.0.0" ./cmd/place-import
//
// Without them, Commit and BuildTime fall back to the VCS stamp the go
// command embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(info)
}

func formatVersion(info *debug.BuildInfo) string {
	version, commit, built := Version, Commit, BuildTime
	if info != nil {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		modified := false
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if modified && commit != "unknown" {
			commit += "-dirty"
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
