// Package locale serves translated status bar captions.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"portanav/internal/ui"
)

//go:embed messages/*.toml
var messages embed.FS

// Message IDs.
const (
	MsgBackEnabled  = "BackEnabled"
	MsgBackDisabled = "BackDisabled"
	MsgDefaultTitle = "DefaultTitle"
	MsgCamera       = "Camera"
	MsgSleep        = "Sleep"
)

var files = []string{
	"messages/active.en.toml",
	"messages/active.de.toml",
}

// Catalog looks up messages for one language, falling back to English.
type Catalog struct {
	tag       language.Tag
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the embedded messages and picks locale, e.g. "de" or "en-US".
func New(locale string) (*Catalog, error) {
	tag := language.English
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(messages, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return &Catalog{
		tag:       tag,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Tag returns the requested language.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Languages returns the languages with message files.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Supported reports whether a message file matches the requested language.
// Unsupported languages fall back to English.
func (c *Catalog) Supported() bool {
	_, _, conf := language.NewMatcher(c.Languages()).Match(c.Tag())
	return conf != language.No
}

// Text returns the message for id, or id itself if there is none.
func (c *Catalog) Text(id string) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}

// Captions returns the status bar captions in this language.
func (c *Catalog) Captions() ui.Captions {
	return ui.Captions{
		BackEnabled:  c.Text(MsgBackEnabled),
		BackDisabled: c.Text(MsgBackDisabled),
		DefaultTitle: c.Text(MsgDefaultTitle),
		Camera:       c.Text(MsgCamera),
		Sleep:        c.Text(MsgSleep),
	}
}
