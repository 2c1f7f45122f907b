package siteconfig

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func configWithTitle(t *testing.T, title string) *Config {
	t.Helper()
	src := Default()
	src.Site.Title = title
	cfg, err := New(src)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return cfg
}

func TestHolderStoreAndLoad(t *testing.T) {
	h := &Holder{}
	if h.Load() != nil {
		t.Fatalf("expected empty holder to return nil")
	}
	cfg := configWithTitle(t, "One")
	h.Store(cfg)
	h.Store(nil)
	if h.Load() != cfg {
		t.Fatalf("expected stored config, nil store must be ignored")
	}
}

func TestHolderReloadKeepsPreviousOnError(t *testing.T) {
	first := configWithTitle(t, "First")
	h := NewHolder(first)

	boom := errors.New("boom")
	if err := h.Reload(func() (*Config, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if h.Load() != first {
		t.Fatalf("failed reload replaced the config")
	}

	second := configWithTitle(t, "Second")
	if err := h.Reload(func() (*Config, error) { return second, nil }); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if h.Load() != second {
		t.Fatalf("expected second config after reload")
	}
}

func TestHolderReloadRejectsNilConfig(t *testing.T) {
	first := configWithTitle(t, "First")
	h := NewHolder(first)

	err := h.Reload(func() (*Config, error) { return nil, nil })
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}
	if h.Load() != first {
		t.Fatalf("nil reload replaced the config")
	}
}

func TestHolderConcurrentReadersSeeWholeValues(t *testing.T) {
	a := configWithTitle(t, "Alpha")
	b := configWithTitle(t, "Beta")
	h := NewHolder(a)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				cfg := h.Load()
				title := cfg.Site().Title
				if got := cfg.Socials()[3].LinkTitle; got != "Follow "+title+" on Twitter" {
					t.Errorf("torn read: title %q with link title %q", title, got)
					return
				}
			}
		}()
	}
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			h.Store(b)
		} else {
			h.Store(a)
		}
	}
	close(stop)
	wg.Wait()
}

func TestInitAndCurrent(t *testing.T) {
	src := Default()
	src.Site.Title = "Process Wide"
	cfg, err := Init(src)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Current() != cfg || Std().Load() != cfg {
		t.Fatalf("Current does not return the initialised config")
	}

	bad := Default()
	bad.Site.PostPerPage = 0
	if _, err := Init(bad); err == nil {
		t.Fatalf("expected Init to fail on invalid source")
	}
	if Current() != cfg {
		t.Fatalf("failed Init replaced the process-wide config")
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("site:\n  title: Before\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	h := NewHolder(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := Watch(ctx, h, path, 10*time.Millisecond)
	defer stop()

	if err := os.WriteFile(path, []byte("site:\n  title: After\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if !waitFor(t, 2*time.Second, func() bool { return h.Load().Site().Title == "After" }) {
		t.Fatalf("expected watcher to publish new title, got %q", h.Load().Site().Title)
	}

	// An invalid edit keeps the last good value.
	if err := os.WriteFile(path, []byte("site:\n  postPerPage: 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	later := future.Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if got := h.Load().Site().Title; got != "After" {
		t.Fatalf("invalid edit replaced config, title now %q", got)
	}

	stop()
	stop()
}

func TestWatchNonPositiveIntervalUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("site:\n  title: Before\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := NewHolder(configWithTitle(t, "Before"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := Watch(ctx, h, path, 0)
	defer stop()

	if err := os.WriteFile(path, []byte("site:\n  title: After\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if !waitFor(t, 3*time.Second, func() bool { return h.Load().Site().Title == "After" }) {
		t.Fatalf("expected watcher with default interval to reload, got %q", h.Load().Site().Title)
	}
}
