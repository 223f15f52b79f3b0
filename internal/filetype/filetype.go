package filetype

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Classification represents the detector's description of one file.
type Classification struct {
	Path        string
	Description string
}

// Describe executes the detector against the provided path and captures its
// one-line description of the content.
func Describe(ctx context.Context, binary string, path string) (Classification, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "file"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Classification{}, errors.New("filetype describe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "--brief", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Classification{}, fmt.Errorf("filetype describe: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return Classification{
		Path:        path,
		Description: strings.TrimSpace(string(output)),
	}, nil
}

// IsZipArchive reports whether the detector classified the content as ZIP
// archive data.
func (c Classification) IsZipArchive() bool {
	return strings.Contains(c.Description, "Zip archive data")
}

// IsText reports whether the detector classified the content as text. The
// detector names JSON manifests differently across versions ("ASCII text",
// "UTF-8 Unicode text", "JSON text data"), so all textual labels count.
func (c Classification) IsText() bool {
	for _, marker := range []string{"ASCII text", "UTF-8 Unicode text", "Unicode text", "JSON text data", "JSON data"} {
		if strings.Contains(c.Description, marker) {
			return true
		}
	}
	return false
}
