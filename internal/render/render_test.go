package render_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wabbex/internal/modlist"
	"wabbex/internal/render"
)

var records = []modlist.Record{
	{Name: "Foo", Author: "Bar", FileID: "1", ModID: "2", Game: "skyrimspecialedition"},
	{Name: "Baz", Author: "Qux", FileID: "3", ModID: "4", Game: "morrowind"},
}

func TestRenderFileURLs(t *testing.T) {
	formatter := render.Formatter{BaseURL: "https://www.nexusmods.com"}
	got := string(formatter.Render(records))

	want := "## 'Foo' by Bar\n" +
		"https://www.nexusmods.com/skyrimspecialedition/mods/2?tab=files&file_id=1\n" +
		"\n" +
		"## 'Baz' by Qux\n" +
		"https://www.nexusmods.com/morrowind/mods/4?tab=files&file_id=3\n" +
		"\n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderModURLs(t *testing.T) {
	formatter := render.Formatter{BaseURL: "https://www.nexusmods.com", UseModURLs: true}
	got := string(formatter.Render(records))

	want := "## 'Foo' by Bar\n" +
		"https://www.nexusmods.com/skyrimspecialedition/mods/2\n" +
		"\n" +
		"## 'Baz' by Qux\n" +
		"https://www.nexusmods.com/morrowind/mods/4\n" +
		"\n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmptyRecordList(t *testing.T) {
	formatter := render.Formatter{BaseURL: "https://www.nexusmods.com"}
	if got := formatter.Render(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestWriteFileCreatesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := render.WriteFile(path, []byte("content\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "content\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestWriteFileRefusesExistingOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte("previous run\n"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	err := render.WriteFile(path, []byte("new content\n"))
	if !errors.Is(err, render.ErrOutputExists) {
		t.Fatalf("expected ErrOutputExists, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != "previous run\n" {
		t.Fatalf("existing output must be untouched, got %q", content)
	}
}
