// SPDX-License-Identifier: MIT

// Package cli is the command line front end for swalign. Settings come from
// flags, SWALIGN_* environment variables and an optional config file, merged
// by Viper and decoded into Config.
package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/swalign"
	"github.com/spf13/viper"
)

// Values accepted by the string-valued settings.
const (
	ScoringUniform    = "uniform"
	ScoringTransition = "transition"

	TraceRecompute = "recompute"
	TraceStored    = "stored"

	FillRowMajor     = "rowmajor"
	FillAntiDiagonal = "antidiagonal"
)

var (
	// ErrUnknownSetting indicates a string setting outside its accepted values.
	ErrUnknownSetting = errors.New("cli: unknown setting value")
)

// Config is the merged set of settings for one run.
type Config struct {
	// scoring policy: "uniform" or "transition"
	Scoring string `mapstructure:"scoring"`

	// uniform scores; Match is also the identity score of the transition table
	Match    int `mapstructure:"match"`
	Mismatch int `mapstructure:"mismatch"`

	// transition substitution score (A<->G, C<->T); transversions use Mismatch
	Transition int `mapstructure:"transition"`

	// per-position gap penalty
	Gap int `mapstructure:"gap"`

	// traceback: "recompute" or "stored"
	Trace string `mapstructure:"trace"`

	// grid fill order: "rowmajor" or "antidiagonal", and its worker bound
	Fill    string `mapstructure:"fill"`
	Workers int    `mapstructure:"workers"`

	// also print the score grid / the trace path
	Matrix bool `mapstructure:"matrix"`
	Path   bool `mapstructure:"path"`
}

// NewConfig decodes the settings held by v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}

	return c, nil
}

// Scheme builds the scoring scheme selected by c.Scoring.
func (c Config) Scheme() (scoring.Scheme, error) {
	switch c.Scoring {
	case ScoringUniform:
		return scoring.Uniform{Match: c.Match, Mismatch: c.Mismatch, Gap: c.Gap}, nil
	case ScoringTransition:
		return scoring.TransitionTransversion(c.Match, c.Transition, c.Mismatch, c.Gap), nil
	default:
		return nil, fmt.Errorf("scoring %q: %w", c.Scoring, ErrUnknownSetting)
	}
}

// Options translates trace/fill settings into swalign options.
func (c Config) Options() ([]swalign.Option, error) {
	var opts []swalign.Option
	switch c.Trace {
	case TraceRecompute:
	case TraceStored:
		opts = append(opts, swalign.WithTraceMode(swalign.StoredDirections))
	default:
		return nil, fmt.Errorf("trace %q: %w", c.Trace, ErrUnknownSetting)
	}

	switch c.Fill {
	case FillRowMajor:
	case FillAntiDiagonal:
		if c.Workers < 1 {
			return nil, fmt.Errorf("workers %d: %w", c.Workers, ErrUnknownSetting)
		}
		opts = append(opts, swalign.WithFill(swalign.AntiDiagonal), swalign.WithWorkers(c.Workers))
	default:
		return nil, fmt.Errorf("fill %q: %w", c.Fill, ErrUnknownSetting)
	}

	return opts, nil
}
