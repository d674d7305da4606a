// Package translator localizes the messages returned to API clients.
package translator

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const (
	LanguageEn = "en"
	LanguageRu = "ru"
)

//go:embed translations/*.toml
var translations embed.FS

type Translator struct {
	logger          zerolog.Logger
	bundle          *i18n.Bundle
	defaultLanguage string
}

// New loads the embedded translations. Messages missing in the requested
// language fall back to defaultLanguage and then to English.
func New(logger zerolog.Logger, defaultLanguage string) (*Translator, error) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLanguage, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(translations, "translations/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		_, err = bundle.LoadMessageFileFS(translations, file)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		logger.Debug().
			Str("file", file).
			Msg("loaded translations")
	}

	return &Translator{
		logger:          logger,
		bundle:          bundle,
		defaultLanguage: tag.String(),
	}, nil
}

// Localize returns the message with the given ID in the first language of
// langs that has it. The ID itself is returned if no translation exists.
func (t *Translator) Localize(messageID string, langs ...string) string {
	langs = append(langs, t.defaultLanguage, LanguageEn)
	localizer := i18n.NewLocalizer(t.bundle, langs...)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		t.logger.Warn().
			Err(err).
			Strs("langs", langs).
			Str("message_id", messageID).
			Msg("translation not found")
		return messageID
	}
	return msg
}

// Languages lists the language tags with loaded translations.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	langs := make([]string, 0, len(tags))
	for _, tag := range tags {
		langs = append(langs, tag.String())
	}
	return langs
}
