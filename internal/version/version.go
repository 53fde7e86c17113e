package version

// Version is the current commitsmith release.
// Bump this on every release.
const Version = "0.3.0"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
