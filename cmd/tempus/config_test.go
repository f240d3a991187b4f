package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "tempus.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindTempusToml(t *testing.T) {
	root := t.TempDir()
	manifest := writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findTempusToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != manifest {
		t.Errorf("findTempusToml(%q) = %q, %v; want %q", nested, got, ok, manifest)
	}
}

func TestFindTempusTomlMissing(t *testing.T) {
	_, ok, err := findTempusToml(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest in an empty directory tree")
	}
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[format]
description = "[year]-[month]-[day]"
version = 1
`)

	manifest, ok, err := loadProjectManifest(root)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if manifest.Root != root {
		t.Errorf("Root = %q, want %q", manifest.Root, root)
	}
	f := manifest.Config.Format
	if f.Description != "[year]-[month]-[day]" || f.Version != 1 || f.Strftime {
		t.Errorf("format config = %+v", f)
	}
}

func TestLoadProjectManifestVersionDefault(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[format]
description = "%Y-%m-%d"
strftime = true
`)

	manifest, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest: %v, %v", ok, err)
	}
	f := manifest.Config.Format
	if f.Version != 2 {
		t.Errorf("Version = %d, want default 2", f.Version)
	}
	if !f.Strftime {
		t.Error("Strftime not set")
	}
}

func TestLoadProjectManifestBadToml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[format\n")

	if _, _, err := loadProjectManifest(root); err == nil {
		t.Error("malformed manifest should fail to load")
	}
}

func TestResolveDescriptionFlagWins(t *testing.T) {
	desc, version, strftime, err := resolveDescription("[hour]:[minute]", 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "[hour]:[minute]" || version != 1 || strftime {
		t.Errorf("got %q, %d, %v", desc, version, strftime)
	}
}

func TestCompileDescription(t *testing.T) {
	if _, err := compileDescription("[hour]:[minute]", 2, false); err != nil {
		t.Errorf("bracket description: %v", err)
	}
	if _, err := compileDescription("%H:%M", 0, true); err != nil {
		t.Errorf("strftime description: %v", err)
	}
	if _, err := compileDescription("[bogus]", 2, false); err == nil {
		t.Error("invalid description should fail to compile")
	}
}
