package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// PackageName identifies this module in version output.
const PackageName = "black-library-store-tools"

var (
	// Set with -ldflags at release time.
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// buildSetting looks up a vcs.* key recorded by the go tool.
func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value, true
		}
	}
	return "", false
}

// GetVersion returns the ldflags version, then the module version, then "development".
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the ldflags commit or the vcs.revision build setting.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if rev, ok := buildSetting("vcs.revision"); ok {
		return rev
	}
	return "unknown"
}

// GetBuildDate returns the ldflags date or the vcs.time build setting.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if ts, ok := buildSetting("vcs.time"); ok {
		return ts
	}
	return "unknown"
}

// GetInfo returns complete version information
func GetInfo() Info {
	return Info{
		Version: GetVersion(),
		Commit:  GetCommit(),
		Date:    GetBuildDate(),
		Package: PackageName,
	}
}

// GetFullVersion returns the version with a short commit and build date when known.
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	shortCommit := info.Commit[:7]
	if info.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", info.Version, shortCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", info.Version, shortCommit, info.Date)
}

// PrintVersion writes the full version report for appName to w.
func PrintVersion(w io.Writer, appName string) error {
	info := GetInfo()
	_, err := fmt.Fprintf(w, "%s version %s\nPackage: %s\nCommit: %s\nBuild Date: %s\n",
		appName, GetFullVersion(), info.Package, info.Commit, info.Date)
	return err
}
