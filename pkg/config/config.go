// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/livebar/modules/streamio"
	"github.com/antgroup/livebar/modules/strengthen"
	"github.com/antgroup/livebar/pkg/progress"
)

const (
	ENV_LIVEBAR_CONFIG = "LIVEBAR_CONFIG"
	maxConfigSize      = 1 << 20
)

var (
	ErrInvalidGlyph = errors.New("glyph must be exactly one character")
	ErrUnknownKey   = errors.New("unknown config key")
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Bar holds the appearance of the bar. Glyphs are strings in the file and
// must hold exactly one character each.
type Bar struct {
	Fill        string   `toml:"fill,omitempty"`
	Empty       string   `toml:"empty,omitempty"`
	Left        string   `toml:"left,omitempty"`
	Right       string   `toml:"right,omitempty"`
	Color       string   `toml:"color,omitempty"`
	ShowETA     bool     `toml:"show_eta"`
	Smooth      bool     `toml:"smooth"`
	Summary     bool     `toml:"summary"`
	MinInterval Duration `toml:"min_interval,omitempty"`
}

type Config struct {
	Bar Bar `toml:"bar"`
}

// Default returns the configuration matching the renderer defaults.
func Default() *Config {
	g := progress.DefaultGlyphs()
	return &Config{
		Bar: Bar{
			Fill:        string(g.Fill),
			Empty:       string(g.Empty),
			Left:        string(g.Left),
			Right:       string(g.Right),
			ShowETA:     true,
			Summary:     true,
			MinInterval: Duration{Duration: progress.DefaultMinRedrawInterval},
		},
	}
}

// NewExpandReader opens file, replacing ${VAR} references with the
// environment when expandEnv is set.
func NewExpandReader(file string, expandEnv bool) (io.ReadCloser, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	if !expandEnv {
		return fd, nil
	}
	defer fd.Close() // nolint
	buf, err := streamio.GrowReadMax(fd, maxConfigSize, 4096)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(os.ExpandEnv(string(buf)))), nil
}

// Decode reads a TOML document over the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads file. An empty name falls back to $LIVEBAR_CONFIG, and no file
// at all yields the defaults.
func Load(file string, expandEnv bool) (*Config, error) {
	if len(file) == 0 {
		file = os.Getenv(ENV_LIVEBAR_CONFIG)
	}
	if len(file) == 0 {
		return Default(), nil
	}
	r, err := NewExpandReader(file, expandEnv)
	if err != nil {
		return nil, err
	}
	defer r.Close() // nolint
	cfg, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return cfg, nil
}

func glyph(key, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s %q: %w", key, s, ErrInvalidGlyph)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (c *Config) Validate() error {
	for _, g := range []struct{ key, value string }{
		{"bar.fill", c.Bar.Fill},
		{"bar.empty", c.Bar.Empty},
		{"bar.left", c.Bar.Left},
		{"bar.right", c.Bar.Right},
	} {
		if _, err := glyph(g.key, g.value); err != nil {
			return err
		}
	}
	if c.Bar.MinInterval.Duration < 0 {
		return fmt.Errorf("bar.min_interval %v: negative interval", c.Bar.MinInterval)
	}
	return nil
}

// Set applies one key=value override, keys are written section.name.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "bar.fill":
		c.Bar.Fill = value
	case "bar.empty":
		c.Bar.Empty = value
	case "bar.left":
		c.Bar.Left = value
	case "bar.right":
		c.Bar.Right = value
	case "bar.color":
		c.Bar.Color = value
	case "bar.show_eta":
		c.Bar.ShowETA = strengthen.SimpleAtob(value, c.Bar.ShowETA)
	case "bar.smooth":
		c.Bar.Smooth = strengthen.SimpleAtob(value, c.Bar.Smooth)
	case "bar.summary":
		c.Bar.Summary = strengthen.SimpleAtob(value, c.Bar.Summary)
	case "bar.min_interval":
		err = c.Bar.MinInterval.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return c.Validate()
}

// Overwrite applies -X style overrides in order.
func (c *Config) Overwrite(values []string) error {
	for _, kv := range values {
		k, v, err := strengthen.SplitKeyValue(kv)
		if err != nil {
			return fmt.Errorf("%q: %w", kv, err)
		}
		if err := c.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the configuration into renderer options. Call Validate
// first, invalid glyphs are skipped.
func (c *Config) Options() []progress.Option {
	g := progress.DefaultGlyphs()
	for _, item := range []struct {
		s string
		r *rune
	}{
		{c.Bar.Fill, &g.Fill},
		{c.Bar.Empty, &g.Empty},
		{c.Bar.Left, &g.Left},
		{c.Bar.Right, &g.Right},
	} {
		if r, err := glyph("", item.s); err == nil {
			*item.r = r
		}
	}
	g.Color = c.Bar.Color
	opts := []progress.Option{
		progress.WithGlyphs(g),
		progress.WithMinRedrawInterval(c.Bar.MinInterval.Duration),
	}
	if !c.Bar.ShowETA {
		opts = append(opts, progress.WithoutETA())
	}
	if c.Bar.Smooth {
		opts = append(opts, progress.WithSmooth())
	}
	if !c.Bar.Summary {
		opts = append(opts, progress.WithoutSummary())
	}
	return opts
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
