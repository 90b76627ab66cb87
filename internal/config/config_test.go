package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultVocabulary(t *testing.T) {
	cfg := Default()
	if len(cfg.Scoring.Skills) != 13 {
		t.Errorf("expected 13 skills, got %d", len(cfg.Scoring.Skills))
	}
	if len(cfg.Scoring.BonusTerms) != 4 {
		t.Errorf("expected 4 bonus terms, got %d", len(cfg.Scoring.BonusTerms))
	}
	if cfg.Search.DefaultTerm != "Senior Business Analyst" {
		t.Errorf("default term: %q", cfg.Search.DefaultTerm)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("app:\n  port: 9999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != 9999 {
		t.Errorf("port override missing: %d", cfg.App.Port)
	}
	if len(cfg.Scoring.Skills) != 13 {
		t.Errorf("defaults lost on partial load: %d skills", len(cfg.Scoring.Skills))
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Scoring.Skills = []string{" SQL ", "sql", "", "CRM"}
	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(out.Scoring.Skills) != 2 {
		t.Errorf("trim/dedup wrong: %v", out.Scoring.Skills)
	}
	if out.Scoring.Skills[0] != "sql" || out.Scoring.Skills[1] != "crm" {
		t.Errorf("lowercasing wrong: %v", out.Scoring.Skills)
	}

	cfg = Default()
	cfg.App.Port = -1
	cfg.Scoring.Skills = nil
	_, res = NormalizeAndValidate(cfg)
	if res.OK() {
		t.Error("expected validation errors for bad port and empty skills")
	}
	if len(res.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", res.Errors)
	}
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(def, []byte("app:\n  port: 1234\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	userPath, err := EnsureUserConfig(dataDir, def)
	if err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}
	if userPath == "" {
		t.Fatal("expected a user config path")
	}
	cfg, err := Load(userPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != 1234 {
		t.Errorf("copied config not loaded: %d", cfg.App.Port)
	}

	// Second call leaves the user copy alone.
	again, err := EnsureUserConfig(dataDir, def)
	if err != nil || again != userPath {
		t.Errorf("expected stable user path, got %q err=%v", again, err)
	}
}

func TestEnsureUserConfigMissingDefaultIsFine(t *testing.T) {
	path, err := EnsureUserConfig(t.TempDir(), "does/not/exist.yml")
	if err != nil {
		t.Fatalf("missing default should not error: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path, got %q", path)
	}
}
