package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/attrtext"
	"git.sr.ht/~rockorager/attrtext/termcap"
)

// config is the merged result of flags, ATTRCAT_* environment variables and
// the optional config file
type config struct {
	Colors       int
	Force        attrtext.ForceMode
	Term         string
	NoAltCharset bool
	Palette      string
	Distance     string
	Wrap         int
	Method       string
	Verbose      bool
}

func bindConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix("ATTRCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg := config{
		Colors:       v.GetInt("colors"),
		Term:         v.GetString("term"),
		NoAltCharset: v.GetBool("no-alt-charset"),
		Palette:      v.GetString("palette"),
		Distance:     v.GetString("distance"),
		Wrap:         v.GetInt("wrap"),
		Method:       v.GetString("method"),
		Verbose:      v.GetBool("verbose"),
	}
	force, err := parseForceMode(v.GetString("force"))
	if err != nil {
		return config{}, err
	}
	cfg.Force = force
	if cfg.Method != "" {
		if _, err := parseWidthMethod(cfg.Method); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

func parseForceMode(s string) (attrtext.ForceMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return attrtext.ForceNone, nil
	case "256":
		return attrtext.Force256Colors, nil
	case "truecolor", "24bit":
		return attrtext.ForceTrueColors, nil
	}
	return attrtext.ForceNone, fmt.Errorf("unknown force mode %q", s)
}

func parseWidthMethod(s string) (attrtext.WidthMethod, error) {
	switch strings.ToLower(s) {
	case "", "wcwidth":
		return attrtext.Wcwidth, nil
	case "unicode":
		return attrtext.Unicode, nil
	case "nozwj":
		return attrtext.NoZWJ, nil
	}
	return attrtext.Wcwidth, fmt.Errorf("unknown width method %q", s)
}

// widthMethod returns the configured width method, or the one detected for
// the terminal
func (cfg config) widthMethod(caps attrtext.Capabilities) attrtext.WidthMethod {
	if cfg.Method == "" {
		return caps.Width
	}
	m, err := parseWidthMethod(cfg.Method)
	if err != nil {
		return caps.Width
	}
	return m
}

// loadPalette reads the palette named by the config. The palette is either
// a file holding hex colors or the list itself
func (cfg config) loadPalette() (*attrtext.Palette, error) {
	distance, err := attrtext.DistanceByName(cfg.Distance)
	if err != nil {
		return nil, err
	}
	if cfg.Palette == "" {
		return attrtext.DefaultPalette.UsingDistance(distance), nil
	}
	list := cfg.Palette
	if !strings.HasPrefix(list, "#") {
		b, err := os.ReadFile(list)
		if err != nil {
			return nil, fmt.Errorf("reading palette: %w", err)
		}
		list = string(b)
	}
	return attrtext.ParsePalette(list, attrtext.WithDistance(distance))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !termcap.IsTerminal(os.Stderr),
	}))
}
