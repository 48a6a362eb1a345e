package main

// Version is the build version
var Version string

// GitTag is the git tag of the build
var GitTag string

// BuildDate is the date when the build was created
var BuildDate string

// prepareVersionInfo sets a runtime version when the version value
// was not injected by the build into the binary (e.g. go install).
func prepareVersionInfo() {
	if Version == "" {
		Version = "dev"
	}
}
