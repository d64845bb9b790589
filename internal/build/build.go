// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit and Date identify the build and are set by linker flags.
var (
	Commit = "none"
	Date   = "unknown"
)

// UserAgent is the User-Agent header sent to the reputation service.
func UserAgent() string {
	return "repute/" + Version
}
