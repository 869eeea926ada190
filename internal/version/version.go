package version

// Version is the release tag stamped into --version output.
var Version = "1.0.0"
