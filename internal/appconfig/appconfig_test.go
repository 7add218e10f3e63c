package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("transport = %q, want stdio", cfg.Transport)
	}
	if cfg.Addr != ":8090" {
		t.Errorf("addr = %q, want :8090", cfg.Addr)
	}
	if len(cfg.TemplateDirs) != 0 {
		t.Errorf("template dirs = %v, want none", cfg.TemplateDirs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PPTMCP_TRANSPORT", "http")
	t.Setenv("PPTMCP_ADDR", "127.0.0.1:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("transport = %q, want http", cfg.Transport)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ppt-mcp.yaml")
	content := "transport: http\naddr: \":7777\"\ntemplate_dirs:\n  - /srv/templates\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transport != TransportHTTP || cfg.Addr != ":7777" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.TemplateDirs) != 1 || cfg.TemplateDirs[0] != "/srv/templates" {
		t.Errorf("template dirs = %v", cfg.TemplateDirs)
	}
}

func TestLoad_BadTransport(t *testing.T) {
	t.Setenv("PPTMCP_TRANSPORT", "carrier-pigeon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
