package siteconfig

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// ErrInvalid matches every *ValidationError via errors.Is.
var ErrInvalid = errors.New("siteconfig: invalid configuration")

// Field-level causes carried by FieldError.
var (
	ErrRequired        = errors.New("is required")
	ErrNotPositive     = errors.New("must be greater than zero")
	ErrNegative        = errors.New("must not be negative")
	ErrOutOfRange      = errors.New("is too large")
	ErrBadURL          = errors.New("must be an absolute URL")
	ErrBadScheme       = errors.New("has an unexpected URL scheme")
	ErrBadMailto       = errors.New("must be a mailto: URI with an address")
	ErrBadLangTag      = errors.New("is not a well-formed BCP 47 tag")
	ErrUnknownPlatform = errors.New("is not a known platform")
	ErrBadNumber       = errors.New("must be an integer")
	ErrBadBool         = errors.New("must be a boolean")
)

// FieldError identifies one offending configuration field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %v (got %q)", e.Field, e.Err, fmt.Sprint(e.Value))
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError is returned when a configuration cannot be built. It lists
// every offending field, not just the first.
type ValidationError struct {
	Errors []*FieldError
}

func (v *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("siteconfig: configuration validation failed:")
	for _, err := range v.Errors {
		sb.WriteString("\n - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (v *ValidationError) Is(target error) bool { return target == ErrInvalid }

func (v *ValidationError) Unwrap() []error {
	errs := make([]error, len(v.Errors))
	for i, e := range v.Errors {
		errs[i] = e
	}
	return errs
}

// Fields returns the names of the offending fields in report order.
func (v *ValidationError) Fields() []string {
	out := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		out[i] = e.Field
	}
	return out
}

type validator struct {
	errs []*FieldError
}

func (v *validator) add(field string, value any, err error) {
	log.Debug().
		Str("config", field).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
	v.errs = append(v.errs, &FieldError{Field: field, Value: value, Err: err})
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errs}
}

func (v *validator) requireString(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, value, ErrRequired)
		return false
	}
	return true
}

func (v *validator) requirePositive(field string, value int) {
	if value <= 0 {
		v.add(field, value, ErrNotPositive)
	}
}

// maxMarginMillis is the largest millisecond count a time.Duration holds.
const maxMarginMillis = math.MaxInt64 / int64(time.Millisecond)

// requireMillis checks a millisecond count before it is turned into a
// time.Duration, so out-of-range values cannot wrap around.
func (v *validator) requireMillis(field string, ms int64) {
	switch {
	case ms < 0:
		v.add(field, ms, ErrNegative)
	case ms > maxMarginMillis:
		v.add(field, ms, ErrOutOfRange)
	}
}

// requireAbsURL checks that value parses as an absolute URL with a host and
// starts with one of the given schemes, spelled exactly as given.
func (v *validator) requireAbsURL(field, value string, schemes ...string) {
	if !v.requireString(field, value) {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		v.add(field, value, ErrBadURL)
		return
	}
	for _, s := range schemes {
		if strings.HasPrefix(value, s+"://") {
			return
		}
	}
	v.add(field, value, ErrBadScheme)
}

func (v *validator) requireMailto(field, value string) {
	if !v.requireString(field, value) {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !strings.HasPrefix(value, "mailto:") {
		v.add(field, value, ErrBadMailto)
		return
	}
	if _, err := mail.ParseAddress(u.Opaque); err != nil {
		v.add(field, value, ErrBadMailto)
	}
}

// requireLangTag accepts tags that are well-formed even when a subtag is not
// in the registry, e.g. "en-EN".
func (v *validator) requireLangTag(field, value string) {
	if !v.requireString(field, value) {
		return
	}
	_, err := language.Parse(value)
	if err == nil {
		return
	}
	var ve language.ValueError
	if errors.As(err, &ve) {
		log.Debug().Str("config", field).Str("subtag", ve.Subtag()).Msg("unregistered subtag in language tag")
		return
	}
	v.add(field, value, ErrBadLangTag)
}
