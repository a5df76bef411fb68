package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X confql/pkg/version.Version=...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (b BuildInfo) String() string {
	result := fmt.Sprintf("confql version %s", b.Version)
	if b.GitCommit != "" {
		result += fmt.Sprintf(" (%s)", b.GitCommit)
	}
	if b.BuildDate != "" {
		result += fmt.Sprintf(" built on %s", b.BuildDate)
	}
	return result + fmt.Sprintf(" %s %s", b.GoVersion, b.Platform)
}

// UserAgent is the User-Agent header sent to Confluence.
func (b BuildInfo) UserAgent() string {
	ua := "confql/" + b.Version
	if b.GitCommit != "" {
		ua += "+" + b.GitCommit
	}
	return fmt.Sprintf("%s (%s; %s)", ua, b.Platform, b.GoVersion)
}
