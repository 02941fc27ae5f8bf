package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	Commit    string `json:"commit"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the current version info. Values not set through ldflags
// are taken from the module build info when `go install` recorded it.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	fillFromBuildInfo(&info)
	return info
}

func fillFromBuildInfo(info *Info) {
	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("dashlaunch %s (commit: %s, built: %s, %s %s/%s)",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.OS, i.Arch)
}

// Field is a labelled version attribute
type Field struct {
	Label string
	Value string
}

// Fields returns the version attributes in display order
func (i Info) Fields() []Field {
	return []Field{
		{Label: "Version", Value: i.Version},
		{Label: "Commit", Value: i.commitLabel()},
		{Label: "Built", Value: i.BuildTime},
		{Label: "Go", Value: i.GoVersion},
		{Label: "Platform", Value: i.OS + "/" + i.Arch},
	}
}

func (i Info) commitLabel() string {
	if i.Modified {
		return i.Commit + " (modified)"
	}
	return i.Commit
}

// Short returns a short version string
func Short() string {
	return Version
}

// Full returns a full version string
func Full() string {
	return Get().String()
}
