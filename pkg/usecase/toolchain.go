package usecase

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/types"
)

// ResolvePixi locates the pixi executable. binDir (PIXI_BIN_DIR) wins when
// set; otherwise binaries downloaded into the artifacts directory are used.
func ResolvePixi(binDir, projectRoot string) (string, error) {
	if binDir == "" {
		candidates := []string{
			filepath.Join(projectRoot, types.DefaultOutputDir),
			filepath.Join(projectRoot, types.DefaultOutputDir, "pixi"),
		}
		for _, candidate := range candidates {
			executable := filepath.Join(candidate, model.ExecName("pixi"))
			if fi, err := os.Stat(executable); err == nil && !fi.IsDir() {
				binDir = candidate
				break
			}
		}
		if binDir == "" {
			return "", goerr.New("could not determine pixi binary location; " +
				"set PIXI_BIN_DIR or run 'download-artifacts --repo pixi'")
		}
	}

	if fi, err := os.Stat(binDir); err != nil || !fi.IsDir() {
		return "", goerr.New("PIXI_BIN_DIR is not a valid directory", goerr.V("dir", binDir))
	}

	executable := filepath.Join(binDir, model.ExecName("pixi"))
	if fi, err := os.Stat(executable); err != nil || fi.IsDir() {
		return "", goerr.New("pixi executable not found; set PIXI_BIN_DIR or run "+
			"'download-artifacts --repo pixi'", goerr.V("path", executable))
	}

	return executable, nil
}
