package version

// Version is shared by alibi, roast and yeet; bump it on every release.
const Version = "1.0.0"

// FullVersion returns the version with the v prefix
func FullVersion() string {
	return "v" + Version
}
