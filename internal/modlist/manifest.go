package modlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"wabbex/internal/filetype"
	"wabbex/internal/logging"
)

var (
	// ErrNotText reports that the detector did not classify the manifest as text.
	ErrNotText = errors.New("manifest is not a text file")
	// ErrEmptyManifest reports that parsing produced an empty or null document.
	ErrEmptyManifest = errors.New("manifest holds no data")
	// ErrMissingArchives reports that the top-level Archives key is absent.
	ErrMissingArchives = errors.New("manifest has no Archives key")
	// ErrNoArchives reports that the Archives sequence is present but empty.
	ErrNoArchives = errors.New("manifest defines no archives")
)

// Object is one node of the generic manifest tree.
type Object map[string]any

// object returns the nested object under key, or nil when the value is absent
// or not an object.
func (o Object) object(key string) Object {
	value, ok := o[key]
	if !ok {
		return nil
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return nested
}

// stringField returns the string under key. Absent, null, or non-string
// values report false.
func (o Object) stringField(key string) (string, bool) {
	value, ok := o[key]
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	return text, ok
}

// scalarField returns the value under key rendered as a string. Strings pass
// through; JSON numbers keep their literal form. Anything else reports false.
func (o Object) scalarField(key string) (string, bool) {
	value, ok := o[key]
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

// Manifest is the parsed modlist document.
type Manifest struct {
	root     Object
	archives []any
}

// Archives returns the manifest's archive entries in document order.
func (m *Manifest) Archives() []any {
	return m.archives
}

// DumpJSON renders the parsed document with indentation, for inspection.
func (m *Manifest) DumpJSON() ([]byte, error) {
	return json.MarshalIndent(m.root, "", "    ")
}

// Loader reads and parses extracted manifest files.
type Loader struct {
	detectorBinary string
	logger         *slog.Logger
}

// NewLoader builds a Loader. The logger may be nil.
func NewLoader(detectorBinary string, logger *slog.Logger) *Loader {
	return &Loader{
		detectorBinary: detectorBinary,
		logger:         logging.NewComponentLogger(logger, "manifest"),
	}
}

// Load classifies, parses, and structurally checks the manifest at path.
func (l *Loader) Load(ctx context.Context, path string) (*Manifest, error) {
	kind, err := filetype.Describe(ctx, l.detectorBinary, path)
	if err != nil {
		return nil, fmt.Errorf("classify manifest: %w", err)
	}
	if !kind.IsText() {
		return nil, fmt.Errorf("%w: detector reported %q", ErrNotText, kind.Description)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber()

	var root Object
	if err := decoder.Decode(&root); err != nil {
		return nil, parseError(err)
	}
	if tok, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("trailing data after document: %v", tok)
		}
		return nil, parseError(err)
	}
	if len(root) == 0 {
		return nil, ErrEmptyManifest
	}

	rawArchives, ok := root["Archives"]
	if !ok || rawArchives == nil {
		return nil, ErrMissingArchives
	}
	archives, ok := rawArchives.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: Archives is not a sequence", ErrMissingArchives)
	}
	if len(archives) == 0 {
		return nil, ErrNoArchives
	}

	l.logger.Debug("parsed manifest",
		logging.Args(
			logging.String("path", path),
			logging.Int("archives", len(archives)),
		)...,
	)
	return &Manifest{root: root, archives: archives}, nil
}

func parseError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("parse manifest: %w at offset %d", err, syntaxErr.Offset)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("parse manifest: %w at offset %d", err, typeErr.Offset)
	}
	return fmt.Errorf("parse manifest: %w", err)
}
