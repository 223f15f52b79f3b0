// Package render turns validated records into the plain-text URL listing and
// writes it to a fresh output file.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"wabbex/internal/modlist"
)

// ErrOutputExists reports that the output path is already occupied.
var ErrOutputExists = errors.New("output file already exists")

// Formatter renders records into the output listing.
type Formatter struct {
	BaseURL    string
	UseModURLs bool
}

// Render emits one block per record, in input order: a heading with the
// record's name and author, the selected URL, and a blank separator line.
func (f Formatter) Render(records []modlist.Record) []byte {
	var buf bytes.Buffer
	for _, record := range records {
		url := record.FileURL(f.BaseURL)
		if f.UseModURLs {
			url = record.ModURL(f.BaseURL)
		}
		fmt.Fprintf(&buf, "## '%s' by %s\n%s\n\n", record.Name, record.Author, url)
	}
	return buf.Bytes()
}

// WriteFile writes the rendered listing to path. The file must not already
// exist; nothing is written when it does.
func WriteFile(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return out.Close()
}
