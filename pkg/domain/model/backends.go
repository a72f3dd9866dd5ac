package model

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// KnownBackends are the build backend executables expected in
// BUILD_BACKENDS_BIN_DIR.
var KnownBackends = []string{
	"pixi-build-cmake",
	"pixi-build-python",
	"pixi-build-rattler-build",
	"pixi-build-rust",
}

// BuildBackendOverride builds the PIXI_BUILD_BACKEND_OVERRIDE value pointing
// pixi at locally built backends. The format is
// "name=/path/to/executable::name2=/path/to/executable2".
func BuildBackendOverride(binDir string) (string, error) {
	info, err := os.Stat(binDir)
	if err != nil || !info.IsDir() {
		return "", goerr.New("backend binary directory is not a valid directory", goerr.V("dir", binDir))
	}

	parts := make([]string, 0, len(KnownBackends))
	for _, backend := range KnownBackends {
		backendPath := filepath.Join(binDir, ExecName(backend))
		if fi, err := os.Stat(backendPath); err != nil || fi.IsDir() {
			return "", goerr.New("build backend executable not found",
				goerr.V("backend", backend),
				goerr.V("path", backendPath),
			)
		}
		parts = append(parts, backend+"="+backendPath)
	}

	return strings.Join(parts, "::"), nil
}
