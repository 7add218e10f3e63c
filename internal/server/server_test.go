package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s := newTestServer(t)
	if s.store == nil {
		t.Fatal("New() did not initialize the registry")
	}
	if s.mcp == nil {
		t.Fatal("New() did not initialize the MCP server")
	}
	if s.cfg.Version != "test" {
		t.Errorf("version = %q, want test", s.cfg.Version)
	}
}

func TestNew_DefaultVersion(t *testing.T) {
	s := New(Config{}, testLogger())
	if s.cfg.Version != "dev" {
		t.Errorf("empty version should default to dev, got %q", s.cfg.Version)
	}
}

func writeTemplateFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("failed to write template file: %v", err)
	}
	return path
}

func TestFindTemplate_RejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.findTemplate("deck.docx"); err == nil {
		t.Error("expected error for .docx")
	} else if !strings.Contains(err.Error(), ".pptx") {
		t.Errorf("error should name supported extensions, got %v", err)
	}
}

func TestFindTemplate_AbsolutePath(t *testing.T) {
	s := newTestServer(t)
	path := writeTemplateFile(t, t.TempDir(), "base.pptx")

	got, err := s.findTemplate(path)
	if err != nil {
		t.Fatalf("findTemplate(%s): %v", path, err)
	}
	if got != path {
		t.Errorf("got %s, want %s", got, path)
	}

	if _, err := s.findTemplate(filepath.Join(t.TempDir(), "missing.pptx")); err == nil {
		t.Error("expected error for missing absolute path")
	}
}

func TestFindTemplate_EnvSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "corp.potx")
	t.Setenv("PPT_TEMPLATE_PATH", dir)

	s := newTestServer(t)
	got, err := s.findTemplate("corp.potx")
	if err != nil {
		t.Fatalf("findTemplate via PPT_TEMPLATE_PATH: %v", err)
	}
	if got != filepath.Join(dir, "corp.potx") {
		t.Errorf("resolved to %s", got)
	}
}

func TestFindTemplate_ConfiguredDirs(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "brand.pptx")

	s := New(Config{Version: "test", TemplateDirs: []string{dir}}, testLogger())
	got, err := s.findTemplate("brand.pptx")
	if err != nil {
		t.Fatalf("findTemplate via configured dir: %v", err)
	}
	if got != filepath.Join(dir, "brand.pptx") {
		t.Errorf("resolved to %s", got)
	}
}

func TestFindTemplate_MissingListsSearchDirs(t *testing.T) {
	t.Setenv("PPT_TEMPLATE_PATH", "")
	s := newTestServer(t)
	_, err := s.findTemplate("nowhere.pptx")
	if err == nil {
		t.Fatal("expected error for unresolvable template")
	}
	if !strings.Contains(err.Error(), "templates") {
		t.Errorf("error should list searched directories, got %v", err)
	}
}
