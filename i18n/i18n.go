// Package i18n holds the active display language and the message catalog
// shared by the forms, the auth client and the development API.
package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale string

const (
	Vietnamese Locale = "vi"
	English    Locale = "en"

	DefaultLocale = Vietnamese
)

var supported = []Locale{Vietnamese, English}

var matcher = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

// Tag returns the BCP-47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Vietnamese
}

func (l Locale) String() string { return string(l) }

// Supported lists the locales the catalog carries.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse matches a single language tag ("en-US", "vi") against the supported
// locales.
func Parse(tag string) (Locale, bool) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", false
	}
	return match(t)
}

// Match picks the best supported locale for an Accept-Language header value.
func Match(acceptLanguage string, fallback Locale) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	if loc, ok := match(tags...); ok {
		return loc
	}
	return fallback
}

func match(tags ...language.Tag) (Locale, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}

// Localizer carries the current UI language. It is passed explicitly to the
// components that need it.
type Localizer struct {
	mu       sync.RWMutex
	current  Locale
	fallback Locale
	messages map[Locale]map[string]string
}

// NewLocalizer starts in the given language; unknown tags start in
// DefaultLocale.
func NewLocalizer(initial string) *Localizer {
	loc, ok := Parse(initial)
	if !ok {
		loc = DefaultLocale
	}
	return &Localizer{
		current:  loc,
		fallback: loc,
		messages: catalog,
	}
}

// Language returns the active locale. It is forwarded as Accept-Language.
func (l *Localizer) Language() Locale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// ChangeLanguage switches the active locale. Unsupported tags select the
// locale the Localizer was created with.
func (l *Localizer) ChangeLanguage(tag string) Locale {
	loc, ok := Parse(tag)
	l.mu.Lock()
	defer l.mu.Unlock()
	if !ok {
		loc = l.fallback
	}
	l.current = loc
	return loc
}

// T translates key in the active locale.
func (l *Localizer) T(key string, args ...any) string {
	return l.TFor(l.Language(), key, args...)
}

// TFor translates key in loc. Missing keys fall back to English, then to the
// key itself.
func (l *Localizer) TFor(loc Locale, key string, args ...any) string {
	format, ok := l.messages[loc][key]
	if !ok {
		format, ok = l.messages[English][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return message.NewPrinter(loc.Tag()).Sprintf(format, args...)
}
