package version

// Version is set at build time via ldflags.
// nolint: gochecknoglobals
var Version = "master"
