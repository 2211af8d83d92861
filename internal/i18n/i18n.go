// Package i18n localizes the user-facing messages of the CLI. Message files
// are embedded; the core inference packages never call into here.
package i18n

import (
	"embed"
	"encoding/json"
	"os"
	"strings"

	gi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var localizer *gi18n.Localizer

// Init loads the embedded message files and installs a localizer for the
// given language, falling back to English. An empty lang consults LANG.
func Init(lang string) (*gi18n.Localizer, error) {
	bundle := gi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			return nil, err
		}
	}
	if lang == "" {
		lang = envLang()
	}
	localizer = gi18n.NewLocalizer(bundle, lang, "en")
	return localizer, nil
}

// T translates a message ID, returning the ID itself when no translation is
// available so callers never lose the message entirely.
func T(id string) string {
	if localizer == nil {
		if _, err := Init(""); err != nil {
			return id
		}
	}
	msg, err := localizer.Localize(&gi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

func envLang() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			// en_US.UTF-8 -> en-US
			v = strings.SplitN(v, ".", 2)[0]
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return "en"
}
