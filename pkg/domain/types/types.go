package types

// Version is the testsuite tooling version
const Version = "0.1.0"

// ServiceName identifies this tool in health responses and notifications
const ServiceName = "pixi-testsuite"

// DefaultOutputDir is where downloaded artifacts are stored, relative to the
// project root. Older tooling expects binaries directly under this directory.
const DefaultOutputDir = "artifacts"

// EnvFile and EnvCIFile are the environment override files loaded from the
// project root. EnvCIFile takes precedence and must never be merged to main.
const (
	EnvFile   = ".env"
	EnvCIFile = ".env.ci"
)
