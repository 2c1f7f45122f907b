package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	logger := log.Logger
	t.Cleanup(func() { log.Logger = logger })
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunCheckValid(t *testing.T) {
	path := writeConfig(t, "site:\n  title: CLI Blog\n")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"check", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "ok: CLI Blog (4 social links, 4 active)") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestRunCheckReportsEveryField(t *testing.T) {
	path := writeConfig(t, "site:\n  title: \"\"\n  postPerPage: 0\n")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"check", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	out := stderr.String()
	for _, field := range []string{"site.title", "site.postPerPage"} {
		if n := strings.Count(out, field); n != 1 {
			t.Errorf("expected %s reported once, got %d times in %q", field, n, out)
		}
	}
}

func TestRunPrint(t *testing.T) {
	path := writeConfig(t, "")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"print", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	var out struct {
		Site struct {
			Title string `json:"title"`
		} `json:"site"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Site.Title != "Ajay's Space" {
		t.Errorf("unexpected title %q", out.Site.Title)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"deploy"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Unknown command: deploy") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 without args, got %d", code)
	}
}
