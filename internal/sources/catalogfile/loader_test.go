package catalogfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeCatalog(t, `---
jobs:
  - id: job-001
    title: Backend Engineer
    company: Acme
    location: Remote
    mode: Remote
    experience: "1-3"
    description: Build APIs
    skills: [Go, SQL]
    salaryRange: 90k-120k
    source: LinkedIn
    postedDaysAgo: 1
    applyUrl: https://example.com/jobs/1
`)

	loader := NewLoader(path)
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Jobs) != 1 {
		t.Fatalf("Load() returned %d jobs, want 1", len(file.Jobs))
	}
	record := file.Jobs[0]
	if record.ID != "job-001" || record.Mode != "Remote" || record.PostedDaysAgo != 1 {
		t.Errorf("unexpected record: %+v", record)
	}
	if len(record.Skills) != 2 {
		t.Errorf("skills = %v, want 2 entries", record.Skills)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/jobs.yaml")
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeCatalog(t, "jobs: [unclosed")
	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with malformed YAML should return error")
	}
}
