// Package buildinfo carries version stamps set at link time, e.g.
//
//	-ldflags "-X huebar/internal/buildinfo.Version=v0.2.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns every stamp on one line.
func String() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}
