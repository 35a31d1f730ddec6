package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"retreat/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

var supported = []language.Tag{language.Spanish, language.English}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	tags            []language.Tag
	matcher         language.Matcher
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "es"). Unsupported defaults fall back to Spanish.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Spanish
	}
	base, _ := tag.Base()
	tag = language.Spanish
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			tag = s
		}
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("❌ i18n: failed to load %s: %v", file, err)
		}
	}

	// The matcher's first tag is its fallback.
	tags := []language.Tag{tag}
	for _, s := range supported {
		if s != tag {
			tags = append(tags, s)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		tags:            tags,
		matcher:         language.NewMatcher(tags),
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// Locale picks the supported locale closest to an Accept-Language header.
// An empty or unparsable header yields the default locale.
func (t *Translator) Locale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLanguage.String()
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLanguage.String()
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLanguage.String()
	}
	return t.tags[idx].String()
}
