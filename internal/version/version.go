package version

// Build information, overridden via ldflags:
//
//	-X github.com/tacogips/egg-import/internal/version.Version=v1.0.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
