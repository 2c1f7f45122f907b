package siteconfig

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNoConfig is returned by Reload when the build function yields no Config.
var ErrNoConfig = errors.New("siteconfig: reload produced no configuration")

// Holder publishes one *Config to concurrent readers. Replacing the value is a
// single atomic pointer swap, so a reader sees either the old or the new
// configuration, never a mix.
type Holder struct {
	v atomic.Pointer[Config]
}

// NewHolder returns a Holder publishing cfg.
func NewHolder(cfg *Config) *Holder {
	h := &Holder{}
	h.Store(cfg)
	return h
}

// Load returns the current configuration, or nil if none was stored.
func (h *Holder) Load() *Config { return h.v.Load() }

// Store publishes cfg. A nil cfg is ignored.
func (h *Holder) Store(cfg *Config) {
	if cfg == nil {
		return
	}
	h.v.Store(cfg)
}

// Reload builds a new configuration and publishes it. If build fails the
// previous configuration stays in place and the error is returned.
func (h *Holder) Reload(build func() (*Config, error)) error {
	cfg, err := build()
	if err == nil && cfg == nil {
		err = ErrNoConfig
	}
	if err != nil {
		log.Error().Err(err).Msg("config reload failed, keeping previous value")
		return err
	}
	h.Store(cfg)
	log.Info().Str("title", cfg.site.Title).Msg("config reloaded")
	return nil
}

var std Holder

// Init builds the process-wide configuration from src and publishes it.
func Init(src Source) (*Config, error) {
	cfg, err := New(src)
	if err != nil {
		return nil, err
	}
	std.Store(cfg)
	return cfg, nil
}

// Current returns the process-wide configuration, or nil before Init.
func Current() *Config { return std.Load() }

// Std returns the holder behind Init and Current, e.g. for Watch.
func Std() *Holder { return &std }

// Watch polls the YAML file at path and, whenever its modification time
// changes, rebuilds the configuration with Load and publishes it to h. It is
// meant for development hot reload. Watching stops when ctx is done or the
// returned stop function is called. A non-positive interval polls once a
// second.
func Watch(ctx context.Context, h *Holder, path string, interval time.Duration) func() {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	var last time.Time
	if fi, err := os.Stat(path); err == nil {
		last = fi.ModTime()
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fi, err := os.Stat(path)
				if err != nil {
					log.Warn().Str("path", path).Err(err).Msg("config watch stat failed")
					continue
				}
				if fi.ModTime().Equal(last) {
					continue
				}
				last = fi.ModTime()
				_ = h.Reload(func() (*Config, error) { return Load(path) })
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}
