// Package locale supplies the month-name and ordinal-marker tables the
// classifier works from. Tables ship as embedded per-language YAML files and
// are merged on demand for a set of requested locale codes.
package locale

import (
	"embed"
	"strings"

	"github.com/ambidate/ambidate/internal/log"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Table maps lower-cased, trailing-period-stripped month names and
// abbreviations to month numbers 1-12, plus the set of ordinal-day markers
// ("st", "nd", ...). Read-only once built.
type Table struct {
	Months   map[string]int
	Ordinals map[string]struct{}
}

// Provider abstracts table construction so the classifier can be fed a
// synthetic table in tests or a different data source entirely.
type Provider interface {
	Tables(codes []string) (*Table, error)
}

// Embedded is the Provider backed by the data files compiled into the binary.
type Embedded struct{}

func (Embedded) Tables(codes []string) (*Table, error) { return Load(codes) }

// supported lists the languages with shipped data files, in data/ naming.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

type localeFile struct {
	Months   map[string]int `yaml:"months"`
	Ordinals []string       `yaml:"ordinals"`
}

// Load builds a merged table for the given locale codes. Codes are matched
// against the shipped languages with x/text matching, so "en-US" resolves to
// the "en" data file. Unresolvable codes are skipped with a diagnostic; if
// none resolve, Load fails. When two locales claim the same month name with
// different numbers the later code wins and a diagnostic is logged.
func Load(codes []string) (*Table, error) {
	if len(codes) == 0 {
		return nil, errors.New("locale: no locale codes given")
	}
	t := &Table{
		Months:   make(map[string]int),
		Ordinals: make(map[string]struct{}),
	}
	loaded := 0
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			log.Basicf("locale: skipping unrecognized code %q: %v", code, err)
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			log.Basicf("locale: no data for code %q", code)
			continue
		}
		base, _ := supported[idx].Base()
		var lf localeFile
		if err := readLocaleFile(base.String(), &lf); err != nil {
			return nil, err
		}
		merge(t, &lf)
		loaded++
	}
	if loaded == 0 {
		return nil, errors.Errorf("locale: none of the requested locales %v are available", codes)
	}
	return t, nil
}

func readLocaleFile(name string, lf *localeFile) error {
	raw, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return errors.Wrapf(err, "locale: reading data for %s", name)
	}
	if err := yaml.Unmarshal(raw, lf); err != nil {
		return errors.Wrapf(err, "locale: parsing data for %s", name)
	}
	return nil
}

// merge folds one language's entries into the merged table, normalizing keys
// and reporting cross-language month-name conflicts. Last write wins.
func merge(t *Table, lf *localeFile) {
	for name, month := range lf.Months {
		key := strings.TrimSuffix(strings.ToLower(name), ".")
		if prev, ok := t.Months[key]; ok && prev != month {
			log.Basicf("locale: month name %q maps to both %d and %d, keeping %d", key, prev, month, month)
		}
		t.Months[key] = month
	}
	for _, o := range lf.Ordinals {
		t.Ordinals[strings.ToLower(o)] = struct{}{}
	}
}
