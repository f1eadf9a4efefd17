// Package version reports the build the dashboard was compiled from
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information
// version, commit and date are stamped with
//
//	-ldflags "-X pcaobdash/internal/core/version.version=v0.1.0 -X pcaobdash/internal/core/version.commit=abcd"
func Info() BuildInfo {
	return BuildInfo{
		Service: "pcaob-dashboard",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String is the short form used in client info and logs
func String() string {
	if commit == "none" {
		return version
	}
	return version + "+" + commit
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
