package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template file extensions accepted by the template tools.
var templateExts = map[string]bool{".pptx": true, ".potx": true}

// templateSearchDirs returns the directories searched for a relative
// template path, in priority order.
func (s *Server) templateSearchDirs() []string {
	dirs := []string{".", "templates"}
	if env := os.Getenv("PPT_TEMPLATE_PATH"); env != "" {
		for _, d := range filepath.SplitList(env) {
			if d != "" {
				dirs = append(dirs, d)
			}
		}
	}
	dirs = append(dirs, s.cfg.TemplateDirs...)
	return dirs
}

// findTemplate resolves a template path. Absolute paths are checked
// directly; relative ones are tried against each search directory.
func (s *Server) findTemplate(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !templateExts[ext] {
		return "", fmt.Errorf("unsupported template type %q: want .pptx or .potx", path)
	}

	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("template file not found: %s", path)
		}
		return path, nil
	}

	dirs := s.templateSearchDirs()
	for _, dir := range dirs {
		candidate := filepath.Join(dir, path)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("template %q not found in any of: %s", path, strings.Join(dirs, ", "))
}
