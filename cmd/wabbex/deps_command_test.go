package main

import (
	"path/filepath"
	"strings"
	"testing"

	"wabbex/internal/testsupport"
)

func TestDepsCommandAllFound(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "deps")
	if err != nil {
		t.Fatalf("deps failed: %v", err)
	}
	if !strings.Contains(stdout, "File type detector") {
		t.Fatalf("expected detector row, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "All required tools found") {
		t.Fatalf("expected success line, got:\n%s", stdout)
	}
}

func TestDepsCommandMissingTool(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Detector.Binary = filepath.Join(testsupport.BaseDir(cfg), "missing-file-tool")
	configPath := testsupport.WriteConfig(t, testsupport.BaseDir(cfg), cfg)

	stdout, _, err := runCLI(t, configPath, "deps")
	if err == nil {
		t.Fatal("expected error for missing detector binary")
	}
	if !strings.Contains(stdout, "Missing required tools") {
		t.Fatalf("expected missing-tool notice, got:\n%s", stdout)
	}
}
