package core

// Overridden at build time via -ldflags.
var version = "dev"

func GetVersion() string {
	return version
}
