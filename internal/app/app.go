// Package app wires the generation pipeline together: character set
// construction, parameter validation, generation, rendering and clipboard.
package app

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/pwforge/pwforge/internal/charset"
	"github.com/pwforge/pwforge/internal/generator"
	"github.com/pwforge/pwforge/internal/logger"
	"github.com/pwforge/pwforge/internal/models"
	"github.com/pwforge/pwforge/internal/output"
	"github.com/pwforge/pwforge/internal/pattern"
	"github.com/pwforge/pwforge/internal/random"
)

// Options is one fully assembled generation request, as gathered from flags
// and config defaults.
type Options struct {
	Count  int
	Length int

	// LengthSet records whether the caller set the length explicitly; an
	// explicit length that disagrees with a pattern's length is an error,
	// while the implicit default simply yields to the pattern.
	LengthSet bool

	CapitalsOff bool
	NumeralsOff bool
	SymbolsOff  bool
	Exclude     string
	Include     string

	MinCapitals int
	MinNumerals int
	MinSymbols  int

	Pattern string

	// Seed, when non-nil, selects the deterministic source. Reproducible
	// output is for testing and demos, not for real credentials.
	Seed *uint64

	Table  bool
	Quiet  bool
	Format string
	Copy   bool
}

// App runs generation requests end to end.
type App struct {
	logger *logger.Logger
	stdout io.Writer

	// terminal gates the banner; JSON consumers and pipes don't want it.
	terminal bool

	// copyToClipboard is swappable for tests.
	copyToClipboard func(string) error
}

// New creates an app writing passwords to stdout. terminal reports whether
// stdout is an interactive terminal.
func New(log *logger.Logger, stdout io.Writer, terminal bool) *App {
	if log == nil {
		log = logger.NewWithWriter(io.Discard)
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &App{
		logger:          log,
		stdout:          stdout,
		terminal:        terminal,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Run executes one generation request.
func (a *App) Run(opts Options) error {
	params, set, err := a.assemble(opts)
	if err != nil {
		return err
	}

	passwords, err := generator.New(set, a.selectSource(opts)).Generate(params)
	if err != nil {
		return err
	}

	entropy := generator.Entropy(set, params)
	a.logger.Debug("generation complete",
		logger.Count(len(passwords)),
		logger.Length(params.Length),
		logger.Alphabet(set.Len()),
		logger.Entropy(entropy))

	if opts.Copy && len(passwords) > 0 {
		if err := a.copyToClipboard(passwords[0]); err != nil {
			a.logger.Warn("could not copy to clipboard", logger.Error(err))
		} else if !opts.Quiet {
			a.logger.Info("password copied to clipboard")
		}
	}

	return a.render(opts, params, passwords, entropy)
}

// assemble reconciles flags into validated generation parameters and builds
// the alphabet. Every configuration error surfaces here, before any
// random sampling happens.
func (a *App) assemble(opts Options) (generator.Params, *charset.CharSet, error) {
	params := generator.Params{
		Length: opts.Length,
		Count:  opts.Count,
	}

	if opts.Pattern != "" {
		p, err := pattern.Parse(opts.Pattern)
		if err != nil {
			return generator.Params{}, nil, err
		}
		if opts.LengthSet && opts.Length != len(p) {
			return generator.Params{}, nil, fmt.Errorf("%w: pattern has %d positions, --length is %d",
				generator.ErrPatternLengthMismatch, len(p), opts.Length)
		}
		params.Length = len(p)
		params.Mode = generator.Patterned{Pattern: p}
	} else {
		params.Mode = generator.FreeForm{
			MinCapitals: opts.MinCapitals,
			MinNumerals: opts.MinNumerals,
			MinSymbols:  opts.MinSymbols,
		}
	}

	set, err := charset.Build(charset.Options{
		CapitalsOff: opts.CapitalsOff,
		NumeralsOff: opts.NumeralsOff,
		SymbolsOff:  opts.SymbolsOff,
		Exclude:     opts.Exclude,
		Include:     opts.Include,
	})
	if err != nil {
		return generator.Params{}, nil, err
	}

	if err := generator.Validate(params, set); err != nil {
		return generator.Params{}, nil, err
	}

	return params, set, nil
}

func (a *App) selectSource(opts Options) random.Source {
	if opts.Seed != nil {
		a.logger.Debug("using seeded generator", logger.Seed(*opts.Seed))
		return random.Seeded(*opts.Seed)
	}
	return random.Secure()
}

func (a *App) render(opts Options, params generator.Params, passwords []string, entropy float64) error {
	if opts.Format == "json" {
		return output.WriteJSON(a.stdout, models.Batch{
			Passwords:   passwords,
			Count:       len(passwords),
			Length:      params.Length,
			EntropyBits: entropy,
		})
	}

	if !opts.Quiet && a.terminal {
		output.Banner(a.stdout)
	}

	if opts.Table {
		output.WriteTable(a.stdout, passwords, output.ColumnCount(len(passwords)), !opts.Quiet)
		return nil
	}

	output.WriteLines(a.stdout, passwords)
	return nil
}
