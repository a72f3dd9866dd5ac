package usecase

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

// extractExecutables extracts the executables selected by kind from the zip
// archive at archivePath into outputDir. Binaries are flattened out of any
// subdirectory, existing files or directories at the destination are
// replaced, and on unix the extracted files are made executable.
func extractExecutables(ctx context.Context, archivePath string, kind model.BinaryKind, outputDir string) ([]string, error) {
	logger := ctxlog.From(ctx)

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open artifact archive", goerr.V("path", archivePath))
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		names = append(names, file.Name)
	}
	logger.Debug("Archive contents", "entries", names)

	windows := runtime.GOOS == "windows"

	var extracted []string
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !kind.Matches(file.Name, windows) {
			continue
		}

		dest, err := extractFlattened(file, outputDir)
		if err != nil {
			return nil, err
		}

		logger.Info("Extracted executable", "path", dest)
		extracted = append(extracted, dest)

		if kind == model.KindPixi {
			break
		}
	}

	if len(extracted) == 0 {
		return nil, goerr.New("no matching executable found in archive",
			goerr.V("archive", archivePath),
			goerr.V("entries", names),
		)
	}

	return extracted, nil
}

// extractFlattened writes a single zip entry into destDir under its base
// name, replacing whatever is already there.
func extractFlattened(file *zip.File, destDir string) (string, error) {
	base := path.Base(file.Name)
	destPath := filepath.Join(destDir, base)

	// Guard against entries that would escape the destination
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", goerr.New("invalid file path in archive",
			goerr.V("entry", file.Name),
			goerr.V("dest", destPath),
		)
	}

	if err := os.RemoveAll(destPath); err != nil {
		return "", goerr.Wrap(err, "failed to replace existing file", goerr.V("path", destPath))
	}

	rc, err := file.Open()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open archive entry", goerr.V("entry", file.Name))
	}
	defer rc.Close()

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return "", goerr.Wrap(err, "failed to write file content", goerr.V("path", destPath))
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(destPath, 0o755); err != nil {
			return "", goerr.Wrap(err, "failed to mark file executable", goerr.V("path", destPath))
		}
	}

	return destPath, nil
}
