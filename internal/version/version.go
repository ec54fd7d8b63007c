package version

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String returns a one-line description of the build.
func String() string {
	s := "robot-arena " + Version + " (" + Commit
	if Date != "" {
		s += ", " + Date
	}
	if Dirty == "true" {
		s += ", dirty"
	}
	return s + ")"
}
