// Package cli wires the inference engine into the ambidate command.
package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ambidate/ambidate/internal/i18n"
	"github.com/ambidate/ambidate/internal/infer"
	"github.com/ambidate/ambidate/internal/locale"
	"github.com/ambidate/ambidate/internal/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	trainFile string
	locales   []string
	jsonOut   bool
	yamlOut   bool
	logLevel  int
	lang      string
}

// NewRootCmd builds the ambidate command. Dates to parse come from the
// positional arguments, or from stdin one per line when none are given.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "ambidate [flags] [date ...]",
		Short: "Infer the day/month/year ordering of ambiguous numeric dates",
		Long: `ambidate parses numeric date strings whose field order is ambiguous on
their own ("2/3/2012") by learning the ordering from a training corpus of
dates written the same way. A failed parse is reported as data, not as an
error; the command only fails on configuration problems.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyEnvDefaults(o, cmd)
			return run(o, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.trainFile, "train", "t", "", "file of exemplar dates, one per line")
	cmd.Flags().StringSliceVarP(&o.locales, "locales", "l", []string{"en"}, "locale codes for month names and ordinals")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "emit results as JSON")
	cmd.Flags().BoolVar(&o.yamlOut, "yaml", false, "emit results as YAML")
	cmd.Flags().IntVar(&o.logLevel, "log", 0, "diagnostic level (0=off .. 4=wire)")
	cmd.Flags().StringVar(&o.lang, "lang", "", "language for messages (defaults to $LANG)")
	return cmd
}

// applyEnvDefaults fills flags the user did not set from an optional
// ~/.config/ambidate/.env file and the AMBIDATE_* environment.
func applyEnvDefaults(o *options, cmd *cobra.Command) {
	if dir, err := os.UserConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, "ambidate", ".env"))
	}
	if v := os.Getenv("AMBIDATE_LOCALES"); v != "" && !cmd.Flags().Changed("locales") {
		o.locales = strings.Split(v, ",")
	}
	if v := os.Getenv("AMBIDATE_LOG"); v != "" && !cmd.Flags().Changed("log") {
		if n, err := strconv.Atoi(v); err == nil {
			o.logLevel = n
		}
	}
}

func run(o *options, args []string, in io.Reader, out io.Writer) error {
	log.SetLevel(log.LevelFromInt(o.logLevel))
	if _, err := i18n.Init(o.lang); err != nil {
		return err
	}

	table, err := locale.Load(o.locales)
	if err != nil {
		return errors.Wrap(err, i18n.T("cli_error_locale_table"))
	}

	var training []string
	if o.trainFile != "" {
		data, err := os.ReadFile(o.trainFile)
		if err != nil {
			return errors.Wrap(err, i18n.T("cli_error_read_training"))
		}
		training = splitLines(string(data))
	}

	parser, err := infer.New(training, table)
	if err != nil {
		return errors.Wrap(err, i18n.T("cli_error_build_parser"))
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(in); err != nil {
			return errors.Wrap(err, i18n.T("cli_error_read_input"))
		}
	}

	results := lo.Map(inputs, func(s string, _ int) infer.ParsedDate {
		return parser.Parse(s)
	})

	switch {
	case o.jsonOut:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return errors.Wrap(err, i18n.T("cli_error_encode_output"))
		}
	case o.yamlOut:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(results); err != nil {
			return errors.Wrap(err, i18n.T("cli_error_encode_output"))
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, i18n.T("cli_error_encode_output"))
		}
	default:
		writeText(out, inputs, results)
	}
	return nil
}

func splitLines(s string) []string {
	lines := lo.Map(strings.Split(s, "\n"), func(l string, _ int) string {
		return strings.TrimSpace(l)
	})
	return lo.Filter(lines, func(l string, _ int) bool { return l != "" })
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
