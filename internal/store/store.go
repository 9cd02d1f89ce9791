package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"career-cli/internal/model"
)

const jobsFileName = "jobs.json"

// Store persists the full job list as a single pretty-printed JSON
// document inside Dir. Whole-file read on load, whole-file replace on
// save; there is no partial or streaming access.
type Store struct {
	Dir string
}

// DefaultDir resolves the data directory for the backing file.
//
// CAREER_DIR overrides resolution entirely (fixtures/tests); otherwise the
// store lives under ~/.career.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("CAREER_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".career"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) jobsPath() string {
	return filepath.Join(s.Dir, jobsFileName)
}

// Load reads the backing store. A missing file is not an error: it yields
// an empty list. A present-but-malformed file is a parse error and aborts
// startup. Records missing post_link (older data) default it to "".
func (s Store) Load() ([]model.Job, error) {
	if err := s.Ensure(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	b, err := os.ReadFile(s.jobsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Job{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", jobsFileName, err)
	}

	var jobs []model.Job
	if err := json.Unmarshal(b, &jobs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", jobsFileName, err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Save overwrites the backing store with the full list. The replace is
// atomic from the caller's perspective: write to a temp file, then rename.
func (s Store) Save(jobs []model.Job) error {
	if err := s.Ensure(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}

	b, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize jobs: %w", err)
	}

	path := s.jobsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jobsFileName, err)
	}
	return os.Rename(tmp, path)
}
