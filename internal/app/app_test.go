package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwforge/pwforge/internal/charset"
	"github.com/pwforge/pwforge/internal/generator"
	"github.com/pwforge/pwforge/internal/logger"
	"github.com/pwforge/pwforge/internal/models"
	"github.com/pwforge/pwforge/internal/pattern"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, logs bytes.Buffer
	a := New(logger.NewWithWriter(&logs), &stdout, false)
	a.copyToClipboard = func(string) error { return nil }
	return a, &stdout, &logs
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRun_Basic(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{Count: 3, Length: 16, Format: "text", Quiet: true})
	require.NoError(t, err)

	lines := outputLines(stdout)
	require.Len(t, lines, 3)
	for _, pw := range lines {
		assert.Len(t, pw, 16)
	}
}

func TestRun_SeedReproducible(t *testing.T) {
	seed := uint64(12345)

	run := func() []string {
		a, stdout, _ := newTestApp(t)
		err := a.Run(Options{Count: 4, Length: 20, Format: "text", Quiet: true, Seed: &seed})
		require.NoError(t, err)
		return outputLines(stdout)
	}

	assert.Equal(t, run(), run())
}

func TestRun_PatternDefinesLength(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	// Default length 16 is not explicitly set; the pattern wins.
	err := a.Run(Options{Count: 2, Length: 16, Pattern: "LLLNNNSSS", Format: "text", Quiet: true})
	require.NoError(t, err)

	for _, pw := range outputLines(stdout) {
		require.Len(t, pw, 9)
		for i, b := range []byte(pw) {
			class, ok := charset.ClassOf(b)
			require.True(t, ok)
			p, _ := pattern.Parse("LLLNNNSSS")
			assert.Equal(t, p[i], class)
		}
	}
}

func TestRun_PatternLengthMismatch(t *testing.T) {
	a, _, _ := newTestApp(t)

	err := a.Run(Options{Count: 1, Length: 16, LengthSet: true, Pattern: "LLLL", Format: "text", Quiet: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrPatternLengthMismatch)
}

func TestRun_PatternWithMatchingExplicitLength(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{Count: 1, Length: 4, LengthSet: true, Pattern: "LLLL", Format: "text", Quiet: true})
	require.NoError(t, err)
	assert.Len(t, outputLines(stdout)[0], 4)
}

func TestRun_JSONFormat(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{Count: 2, Length: 10, Format: "json"})
	require.NoError(t, err)

	var batch models.Batch
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &batch))
	assert.Equal(t, 2, batch.Count)
	assert.Equal(t, 10, batch.Length)
	assert.Len(t, batch.Passwords, 2)
	assert.Greater(t, batch.EntropyBits, 0.0)
}

func TestRun_JSONEntropyLowercaseOnly(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{
		Count:       1,
		Length:      16,
		CapitalsOff: true,
		NumeralsOff: true,
		SymbolsOff:  true,
		Format:      "json",
	})
	require.NoError(t, err)

	var batch models.Batch
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &batch))
	assert.InDelta(t, 75.2, batch.EntropyBits, 0.1)
}

func TestRun_TableFormat(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{Count: 9, Length: 8, Format: "text", Table: true})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Printing 9 passwords in 3 columns")
}

func TestRun_EmptyCharacterSet(t *testing.T) {
	a, _, _ := newTestApp(t)

	err := a.Run(Options{
		Count:       1,
		Length:      8,
		CapitalsOff: true,
		NumeralsOff: true,
		SymbolsOff:  true,
		Exclude:     "a-z",
		Format:      "text",
	})
	assert.ErrorIs(t, err, charset.ErrEmptyCharacterSet)
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			"minimums exceed length",
			Options{Count: 1, Length: 4, MinCapitals: 5, Format: "text"},
			generator.ErrMinimumsExceedLength,
		},
		{
			"minimum for disabled class",
			Options{Count: 1, Length: 8, SymbolsOff: true, MinSymbols: 2, Format: "text"},
			generator.ErrUnsatisfiableMinimum,
		},
		{
			"pattern class unavailable",
			Options{Count: 1, Length: 2, CapitalsOff: true, Pattern: "UU", Format: "text"},
			generator.ErrClassUnavailable,
		},
		{
			"zero count",
			Options{Count: 0, Length: 8, Format: "text"},
			generator.ErrCountOutOfBounds,
		},
		{
			"length too long",
			Options{Count: 1, Length: generator.MaxLength + 1, Format: "text"},
			generator.ErrLengthOutOfBounds,
		},
		{
			"bad exclude spec",
			Options{Count: 1, Length: 8, Exclude: "z-a", Format: "text"},
			charset.ErrInvalidRangeSpec,
		},
		{
			"bad pattern character",
			Options{Count: 1, Length: 3, Pattern: "LXL", Format: "text"},
			pattern.ErrInvalidPatternCharacter,
		},
		{
			"negative minimum",
			Options{Count: 1, Length: 8, Format: "text", MinCapitals: -1},
			generator.ErrUnsatisfiableMinimum,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t)
			err := a.Run(tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_NoPartialOutputOnError(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{Count: 1, Length: 4, MinCapitals: 5, Format: "text"})
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_CopyUsesFirstPassword(t *testing.T) {
	a, stdout, _ := newTestApp(t)

	var copied string
	a.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	err := a.Run(Options{Count: 3, Length: 12, Format: "text", Quiet: true, Copy: true})
	require.NoError(t, err)
	assert.Equal(t, outputLines(stdout)[0], copied)
}

func TestRun_CopyFailureIsNotFatal(t *testing.T) {
	a, stdout, logs := newTestApp(t)
	a.copyToClipboard = func(string) error { return errors.New("no clipboard here") }

	err := a.Run(Options{Count: 1, Length: 12, Format: "text", Quiet: true, Copy: true})
	require.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
	assert.Contains(t, logs.String(), "could not copy to clipboard")
}

func TestRun_BannerOnlyOnTerminal(t *testing.T) {
	var stdout bytes.Buffer
	a := New(logger.NewWithWriter(io.Discard), &stdout, true)
	a.copyToClipboard = func(string) error { return nil }

	err := a.Run(Options{Count: 1, Length: 8, Format: "text"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "| .__/")

	stdout.Reset()
	err = a.Run(Options{Count: 1, Length: 8, Format: "text", Quiet: true})
	require.NoError(t, err)
	assert.NotContains(t, stdout.String(), "| .__/")
}

func TestRun_NoBannerInJSON(t *testing.T) {
	var stdout bytes.Buffer
	a := New(logger.NewWithWriter(io.Discard), &stdout, true)

	err := a.Run(Options{Count: 1, Length: 8, Format: "json"})
	require.NoError(t, err)
	assert.True(t, json.Valid(stdout.Bytes()), "banner corrupted JSON output")
}

func TestRun_IncludeOverridesClassFlags(t *testing.T) {
	seed := uint64(9)
	a, stdout, _ := newTestApp(t)

	err := a.Run(Options{
		Count:       1,
		Length:      50,
		CapitalsOff: true,
		Include:     "A-C",
		Format:      "text",
		Quiet:       true,
		Seed:        &seed,
	})
	require.NoError(t, err)

	for _, b := range []byte(outputLines(stdout)[0]) {
		assert.True(t, b >= 'A' && b <= 'C', "unexpected character %q", b)
	}
}
