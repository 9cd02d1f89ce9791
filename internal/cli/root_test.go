package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveStore_ExplicitDirWins(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := resolveStore(dir)
	if err != nil {
		t.Fatalf("resolveStore: %v", err)
	}
	if s.Dir != dir {
		t.Fatalf("expected explicit dir %q; got %q", dir, s.Dir)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("resolveStore should create the data dir: %v", err)
	}
}

func TestResolveStore_EnvFallback(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "env-data")
	t.Setenv("CAREER_DIR", dir)

	s, err := resolveStore("")
	if err != nil {
		t.Fatalf("resolveStore: %v", err)
	}
	if s.Dir != dir {
		t.Fatalf("expected CAREER_DIR %q; got %q", dir, s.Dir)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("CAREER_TEST_ENVOR", "set")
	if got := envOr("CAREER_TEST_ENVOR", "fallback"); got != "set" {
		t.Fatalf("envOr with value: got %q", got)
	}
	if got := envOr("CAREER_TEST_ENVOR_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("envOr fallback: got %q", got)
	}
}
