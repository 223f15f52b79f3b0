package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"wabbex/internal/filetype"
	"wabbex/internal/logging"
)

var (
	// ErrNotFound reports that the input path is not a regular file.
	ErrNotFound = errors.New("input is not a regular file")
	// ErrNotZip reports that the detector did not classify the input as ZIP archive data.
	ErrNotZip = errors.New("input is not a ZIP archive")
	// ErrManifestMissing reports that no entry matched the manifest name.
	ErrManifestMissing = errors.New("archive contains no manifest entry")
	// ErrManifestAmbiguous reports that more than one entry matched the manifest name.
	ErrManifestAmbiguous = errors.New("archive contains more than one manifest entry")
)

// Opener locates and extracts the manifest entry from modlist archives.
type Opener struct {
	detectorBinary string
	manifestName   string
	workDir        string
	logger         *slog.Logger
}

// NewOpener builds an Opener. The logger may be nil.
func NewOpener(detectorBinary, manifestName, workDir string, logger *slog.Logger) *Opener {
	return &Opener{
		detectorBinary: detectorBinary,
		manifestName:   manifestName,
		workDir:        workDir,
		logger:         logging.NewComponentLogger(logger, "archive"),
	}
}

// ExtractManifest verifies archivePath holds ZIP data, locates the manifest
// entry by exact name, and extracts it into a fresh scratch directory. The
// returned cleanup function removes the scratch directory and must be deferred
// by the caller; it is only non-nil on success.
func (o *Opener) ExtractManifest(ctx context.Context, archivePath string) (string, func(), error) {
	info, err := os.Stat(archivePath)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil, fmt.Errorf("%w: %s", ErrNotFound, archivePath)
	}

	kind, err := filetype.Describe(ctx, o.detectorBinary, archivePath)
	if err != nil {
		return "", nil, fmt.Errorf("classify archive: %w", err)
	}
	if !kind.IsZipArchive() {
		return "", nil, fmt.Errorf("%w: detector reported %q", ErrNotZip, kind.Description)
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	var manifest *zip.File
	for _, entry := range reader.File {
		if entry.Name != o.manifestName {
			continue
		}
		if manifest != nil {
			return "", nil, fmt.Errorf("%w: %s", ErrManifestAmbiguous, o.manifestName)
		}
		manifest = entry
	}
	if manifest == nil {
		return "", nil, fmt.Errorf("%w: %s", ErrManifestMissing, o.manifestName)
	}

	scratch, err := o.newScratchDir()
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := os.RemoveAll(scratch); err != nil {
			o.logger.Warn("failed to remove scratch directory",
				logging.Args(logging.String("path", scratch), logging.Error(err))...,
			)
		}
	}

	manifestPath := filepath.Join(scratch, o.manifestName)
	if err := extractEntry(manifest, manifestPath); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("extract manifest: %w", err)
	}

	o.logger.Debug("extracted manifest entry",
		logging.Args(
			logging.String("archive", archivePath),
			logging.String("manifest", manifestPath),
			logging.Int64("size", int64(manifest.UncompressedSize64)),
		)...,
	)
	return manifestPath, cleanup, nil
}

func (o *Opener) newScratchDir() (string, error) {
	if err := os.MkdirAll(o.workDir, 0o755); err != nil {
		return "", fmt.Errorf("create work directory %q: %w", o.workDir, err)
	}
	scratch := filepath.Join(o.workDir, "extract-"+uuid.NewString())
	if err := os.Mkdir(scratch, 0o755); err != nil {
		return "", fmt.Errorf("create scratch directory: %w", err)
	}
	return scratch, nil
}

func extractEntry(entry *zip.File, dst string) error {
	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
