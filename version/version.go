package version

// AppVersion is the application version string, overridable at build time
// via -ldflags "-X scanrelay/version.AppVersion=...".
var AppVersion = "v0.3.0"
