package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/attrtext"
	"git.sr.ht/~rockorager/attrtext/termcap"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "attrcat [file...]",
		Short:        "Re-encode styled text for the current terminal",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return render(cmd, cfg, args)
		},
	}
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.Int("colors", 0, "color depth of the terminal (0 detects)")
	flags.String("force", "none", "force the color format: none, 256 or truecolor")
	flags.String("term", "", "terminal type (default $TERM)")
	flags.Bool("no-alt-charset", false, "never use the alternate character set")
	flags.String("palette", "", "palette file, or a list of hex colors")
	flags.String("distance", "rgb", "color distance: rgb, cie76, cie94 or cie00")
	flags.String("method", "", "width method: wcwidth, unicode or nozwj (default detected)")
	flags.BoolP("verbose", "v", false, "verbose output")
	cmd.Flags().Int("wrap", -1, "wrap lines at this many columns (0 uses the terminal width)")

	// viper reads flag values when asked, so binding before parsing is
	// fine
	if err := bindConfig(v, flags); err != nil {
		panic(err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		newWidthCommand(v),
		newSliceCommand(v),
	)
	return cmd
}

// terminal returns the capabilities of stdout and the options to encode for
// it, with overrides from cfg applied
func terminal(cfg config) (caps attrtext.Capabilities, opts attrtext.EncodeOptions, err error) {
	palette, err := cfg.loadPalette()
	if err != nil {
		return caps, opts, err
	}
	caps, err = termcap.Detect(termcap.Options{
		Term:    cfg.Term,
		Output:  os.Stdout,
		Palette: palette,
	})
	switch {
	case errors.Is(err, termcap.ErrNoTerminfo):
		slog.Debug("using environment capabilities only", "error", err)
	case err != nil:
		return caps, opts, err
	}
	if cfg.Colors > 0 {
		caps.MaxColors = cfg.Colors
	}
	opts = caps.EncodeOptions()
	if cfg.Force != attrtext.ForceNone {
		opts.Force = cfg.Force
	}
	if cfg.NoAltCharset {
		opts.AltCharsetEnter = ""
		opts.AltCharsetExit = ""
	}
	slog.Debug("encoding",
		"term", caps.Type,
		"colors", opts.ColorDepth,
		"force", opts.Force,
		"width", cfg.widthMethod(caps),
	)
	return caps, opts, nil
}

// encodeFunc returns a function encoding sequences for the terminal
func encodeFunc(caps attrtext.Capabilities, opts attrtext.EncodeOptions) func(attrtext.Sequence) string {
	return func(s attrtext.Sequence) string {
		if caps.IsDumb() {
			return s.String()
		}
		return attrtext.Encode(s, opts)
	}
}

func render(cmd *cobra.Command, cfg config, args []string) error {
	setupLogging(cfg)
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	seq := attrtext.NewBuilder().AppendANSI(text).ToString()
	caps, opts, err := terminal(cfg)
	if err != nil {
		return err
	}
	encode := encodeFunc(caps, opts)

	out := cmd.OutOrStdout()
	width := cfg.Wrap
	if width == 0 {
		width, _, err = termcap.Size(os.Stdout)
		if err != nil {
			return fmt.Errorf("terminal width: %w", err)
		}
	}
	if width < 0 {
		_, err = io.WriteString(out, encode(seq))
		return err
	}
	lines := cfg.widthMethod(caps).SplitColumns(seq, width, false, true)
	encoded := make([]string, 0, len(lines))
	for _, line := range lines {
		encoded = append(encoded, encode(line))
	}
	_, err = io.WriteString(out, strings.Join(encoded, "\n"))
	return err
}

func setupLogging(cfg config) {
	logger := newLogger(cfg.Verbose)
	slog.SetDefault(logger)
	termcap.SetLogger(logger)
}

// readInput concatenates the named files, or reads stdin when there are
// none. "-" names stdin
func readInput(stdin io.Reader, files []string) (string, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var b strings.Builder
	for _, name := range files {
		var (
			data []byte
			err  error
		)
		switch name {
		case "-":
			data, err = io.ReadAll(stdin)
		default:
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return "", err
		}
		b.Write(data)
	}
	return b.String(), nil
}
