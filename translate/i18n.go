package translate

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator satisfies Lookup.
var _ Lookup = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
// The localizer is built once at construction; go-i18n localization
// is read-only afterwards, so Get is safe from any goroutine.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator builds a Translator for the given locale (e.g. "en",
// "de"). Unknown locales fall back to English. Translations come from
// the embedded active.*.toml files.
func NewTranslator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.de.toml"} {
		// The embed directive guarantees the files exist; a parse
		// failure just leaves those messages to the key fallback.
		_, _ = bundle.LoadMessageFileFS(localeFS, file)
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// Get renders the message identified by key. Unresolvable keys return
// the key itself; the empty key returns "".
func (t *Translator) Get(key string) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
