// pwforge generates random passwords under configurable composition rules.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pwforge/pwforge/internal/app"
	"github.com/pwforge/pwforge/internal/config"
	"github.com/pwforge/pwforge/internal/logger"
)

const examples = `  pwforge 5                            # Generate 5 passwords
  pwforge 10 --length 20               # Generate 10 passwords of length 20
  pwforge 25 --table                   # Generate 25 passwords in table format
  pwforge 5 --capitals-off             # Generate without capital letters
  pwforge 5 --exclude-chars a-z,0-9    # Exclude ranges of characters
  pwforge 5 --exclude-chars a,b,c      # Exclude specific characters
  pwforge 5 --numerals-off --symbols-off
  pwforge 1 --pattern LLLNNNSSS        # 3 lowercase, 3 numerals, 3 symbols`

type cliFlags struct {
	length      int
	capitalsOff bool
	numeralsOff bool
	symbolsOff  bool
	exclude     string
	include     string
	minCapitals int
	minNumerals int
	minSymbols  int
	patternStr  string
	seed        uint64
	table       bool
	quiet       bool
	format      string
	copyFirst   bool
}

func main() {
	log := logger.New()

	cmd, err := newRootCmd(log)
	if err != nil {
		log.Error("Failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		log.Error("Generation failed", logger.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger) (*cobra.Command, error) {
	cfg, err := config.LoadWithFiles(".env", getEnvOrDefault("PWFORGE_CONFIG", defaultConfigPath()))
	if err != nil {
		return nil, err
	}

	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:     "pwforge [count]",
		Short:   "A fast and customizable password generator",
		Example: examples,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := cfg.Count
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid password count %q: %w", args[0], err)
				}
				count = parsed
			}

			opts := app.Options{
				Count:       count,
				Length:      flags.length,
				LengthSet:   cmd.Flags().Changed("length"),
				CapitalsOff: flags.capitalsOff,
				NumeralsOff: flags.numeralsOff,
				SymbolsOff:  flags.symbolsOff,
				Exclude:     flags.exclude,
				Include:     flags.include,
				MinCapitals: flags.minCapitals,
				MinNumerals: flags.minNumerals,
				MinSymbols:  flags.minSymbols,
				Pattern:     flags.patternStr,
				Table:       flags.table,
				Quiet:       flags.quiet,
				Format:      flags.format,
				Copy:        flags.copyFirst,
			}
			if cmd.Flags().Changed("seed") {
				seed := flags.seed
				opts.Seed = &seed
			}

			terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			return app.New(log, os.Stdout, terminal).Run(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.IntVarP(&flags.length, "length", "l", cfg.Length, "length of each password")
	f.BoolVarP(&flags.capitalsOff, "capitals-off", "c", false, "disable capital letters")
	f.BoolVarP(&flags.numeralsOff, "numerals-off", "n", false, "disable numerals")
	f.BoolVarP(&flags.symbolsOff, "symbols-off", "s", false, "disable symbols")
	f.StringVarP(&flags.exclude, "exclude-chars", "e", "", "exclude characters or ranges (comma-separated, e.g. a-z,0-9,x)")
	f.StringVar(&flags.include, "include-chars", "", "use only these characters or ranges (overrides class flags)")
	f.IntVar(&flags.minCapitals, "min-capitals", 0, "minimum number of capital letters required")
	f.IntVar(&flags.minNumerals, "min-numerals", 0, "minimum number of numerals required")
	f.IntVar(&flags.minSymbols, "min-symbols", 0, "minimum number of symbols required")
	f.StringVar(&flags.patternStr, "pattern", "", "per-position classes: L=lowercase, U=uppercase, N=numeral, S=symbol")
	f.Uint64Var(&flags.seed, "seed", 0, "seed for reproducible output (testing only)")
	f.BoolVarP(&flags.table, "table", "t", false, "print passwords in a table")
	f.BoolVarP(&flags.quiet, "quiet", "q", cfg.Quiet, "suppress banner and headers")
	f.StringVar(&flags.format, "format", cfg.Format, "output format: text or json")
	f.BoolVar(&flags.copyFirst, "copy", false, "copy the first password to the clipboard")

	return cmd, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/pwforge/pwforge.toml"
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
