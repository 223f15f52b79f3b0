// Package testsupport provides fixtures shared by wabbex tests: modlist
// archives, stub detector binaries, and preconfigured Configs.
package testsupport

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// WriteArchive builds a ZIP file at dir/name containing the provided entries
// in map-iteration order and returns its path.
func WriteArchive(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive %s: %v", path, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for entryName, content := range entries {
		entry, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("create entry %s: %v", entryName, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", entryName, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize archive %s: %v", path, err)
	}
	return path
}

// WriteArchiveWithDuplicateEntries builds a ZIP file containing the same entry
// name the requested number of times. The ZIP format permits this; wabbex must
// reject it.
func WriteArchiveWithDuplicateEntries(t testing.TB, dir, name, entryName string, count int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive %s: %v", path, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for i := 0; i < count; i++ {
		entry, err := w.Create(entryName)
		if err != nil {
			t.Fatalf("create entry %s: %v", entryName, err)
		}
		if _, err := entry.Write([]byte("{}")); err != nil {
			t.Fatalf("write entry %s: %v", entryName, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize archive %s: %v", path, err)
	}
	return path
}

// StubDetector writes a fake file(1) implementation that reports ZIP archive
// data for *.wabbajack paths and ASCII text for everything else. It returns
// the stub's path.
func StubDetector(t testing.TB, dir string) string {
	t.Helper()

	script := `#!/bin/sh
# args: --brief -- <path>
case "$3" in
*.wabbajack) echo "Zip archive data, at least v2.0 to extract" ;;
*) echo "ASCII text" ;;
esac
`
	return writeStub(t, dir, "file", script)
}

// StubDetectorFixed writes a fake file(1) implementation that always prints the
// provided description.
func StubDetectorFixed(t testing.TB, dir, description string) string {
	t.Helper()

	script := "#!/bin/sh\necho \"" + description + "\"\n"
	return writeStub(t, dir, "file", script)
}

func writeStub(t testing.TB, dir, name, script string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
	return path
}
