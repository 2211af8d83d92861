package i18n

import (
	"testing"

	gi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestTranslation(t *testing.T) {
	cases := []struct {
		lang, expected string
	}{
		{"es", "no se pudo leer el archivo de entrenamiento"},
		{"de", "die Trainingsdatei konnte nicht gelesen werden"},
		{"en", "could not read the training file"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.lang, func(t *testing.T) {
			loc, err := Init(tc.lang)
			if err != nil {
				t.Fatalf("init failed: %v", err)
			}
			msg, err := loc.Localize(&gi18n.LocalizeConfig{MessageID: "cli_error_read_training"})
			if err != nil {
				t.Fatalf("localize failed: %v", err)
			}
			if msg != tc.expected {
				t.Fatalf("unexpected translation (%s): %q", tc.lang, msg)
			}
		})
	}
}

func TestTFallsBackToID(t *testing.T) {
	if _, err := Init("en"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if got := T("no_such_message"); got != "no_such_message" {
		t.Fatalf("T for unknown id = %q, want the id itself", got)
	}
	if got := T("cli_error_locale_table"); got != "could not build the locale table" {
		t.Fatalf("T = %q", got)
	}
}
