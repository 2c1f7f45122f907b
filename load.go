package siteconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvWebsite             = "SITE_WEBSITE"
	EnvAuthor              = "SITE_AUTHOR"
	EnvProfile             = "SITE_PROFILE"
	EnvDesc                = "SITE_DESC"
	EnvTitle               = "SITE_TITLE"
	EnvOGImage             = "SITE_OG_IMAGE"
	EnvLightAndDarkMode    = "SITE_LIGHT_AND_DARK_MODE"
	EnvPostPerIndex        = "SITE_POST_PER_INDEX"
	EnvPostPerPage         = "SITE_POST_PER_PAGE"
	EnvScheduledPostMargin = "SITE_SCHEDULED_POST_MARGIN_MS"
	EnvShowArchives        = "SITE_SHOW_ARCHIVES"
	EnvLang                = "SITE_LANG"
	EnvLangTag             = "SITE_LANG_TAG" // comma separated, primary first
)

// Load builds a Config from Default, then the YAML file at path (skipped when
// path is empty), then the SITE_* environment variables.
func Load(path string) (*Config, error) {
	src := Default()
	if path != "" {
		if err := LoadFile(path, &src); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(&src); err != nil {
		return nil, err
	}
	return New(src)
}

// LoadFile decodes the YAML file at path on top of src. Keys absent from the
// file keep their current value; a list in the file replaces the list in src.
// Unknown keys are rejected.
func LoadFile(path string, src *Source) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("siteconfig: read %s: %w", path, err)
	}
	if err := decodeYAML(data, src); err != nil {
		return fmt.Errorf("siteconfig: parse %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("config file loaded")
	return nil
}

func decodeYAML(data []byte, src *Source) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(src); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides src with any SITE_* variables that are set. Malformed
// numbers or booleans are reported together as a *ValidationError.
func ApplyEnv(src *Source) error {
	v := &validator{}
	s := &src.Site

	envString(EnvWebsite, &s.Website)
	envString(EnvAuthor, &s.Author)
	envString(EnvProfile, &s.Profile)
	envString(EnvDesc, &s.Desc)
	envString(EnvTitle, &s.Title)
	envString(EnvOGImage, &s.OGImage)
	envBool(v, EnvLightAndDarkMode, &s.LightAndDarkMode)
	envInt(v, EnvPostPerIndex, &s.PostPerIndex)
	envInt(v, EnvPostPerPage, &s.PostPerPage)
	if raw, ok := os.LookupEnv(EnvScheduledPostMargin); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			v.add(EnvScheduledPostMargin, raw, ErrBadNumber)
		} else {
			s.ScheduledPostMargin = n
		}
	}
	envBool(v, EnvShowArchives, &s.ShowArchives)

	envString(EnvLang, &src.Locale.Lang)
	if raw, ok := os.LookupEnv(EnvLangTag); ok {
		src.Locale.LangTag = splitList(raw)
	}
	return v.err()
}

// LoadDotenv loads .env files into the process environment. Missing files are
// skipped and variables that are already set are not overwritten, so the
// first file listed wins.
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			log.Debug().Str("path", p).Err(err).Msg("dotenv not loaded")
			continue
		}
		log.Debug().Str("path", p).Msg("dotenv loaded")
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envString(key string, dst *string) {
	if raw, ok := os.LookupEnv(key); ok {
		*dst = raw
	}
}

func envInt(v *validator, key string, dst *int) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v.add(key, raw, ErrBadNumber)
		return
	}
	*dst = n
}

func envBool(v *validator, key string, dst *bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		v.add(key, raw, ErrBadBool)
		return
	}
	*dst = b
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
