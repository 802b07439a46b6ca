package main

import (
	"github.com/tacogips/egg-import/internal/cli"
	"github.com/tacogips/egg-import/internal/version"
)

// Version information (set via ldflags during build)
var (
	buildVersion = "dev"
	gitCommit    = "unknown"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.GitCommit = gitCommit
	version.BuildDate = buildDate

	cli.Execute()
}
