package version

// Set via ldflags at release build time.
var (
	Version   = "1.0.0"
	CommitSHA = "untracked"
	BuildTime = "unknown"
)
