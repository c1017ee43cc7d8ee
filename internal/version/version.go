// internal/version/version.go
package version

// Version is stamped by the release workflow; keep the default in sync with
// the latest tag.
const Version = "0.1.0"
