package version

// Version is set at build time with -ldflags "-X .../version.Version=...".
var Version = "dev"
