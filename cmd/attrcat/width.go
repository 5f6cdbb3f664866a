package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git.sr.ht/~rockorager/attrtext"
)

// newWidthCommand measures the width of a string as it will be rendered in
// the terminal
func newWidthCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "width [text]",
		Short: "Print the display width of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cfg)
			var input string
			switch len(args) {
			case 0:
				fmt.Fprint(cmd.ErrOrStderr(), "Enter text: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				scanner.Scan()
				input = scanner.Text()
			case 1:
				input = args[0]
			}
			caps, _, err := terminal(cfg)
			if err != nil {
				return err
			}
			seq := attrtext.NewBuilder().AppendANSI(input)
			w := cfg.widthMethod(caps).DisplayWidth(seq)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, w)
			if cfg.Verbose {
				fmt.Fprintln(out, "|"+strings.Repeat("-", w)+"|")
				fmt.Fprintln(out, "|"+seq.String()+"|")
			}
			return nil
		},
	}
}

// newSliceCommand prints the columns [start, end) of each input line
func newSliceCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "slice START END [file...]",
		Short: "Print the given display columns of each line",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cfg)
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("start column: %w", err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("end column: %w", err)
			}
			if start < 0 || end < start {
				return fmt.Errorf("invalid column range [%d,%d)", start, end)
			}
			text, err := readInput(cmd.InOrStdin(), args[2:])
			if err != nil {
				return err
			}
			caps, opts, err := terminal(cfg)
			if err != nil {
				return err
			}
			encode := encodeFunc(caps, opts)
			method := cfg.widthMethod(caps)
			seq := attrtext.NewBuilder().AppendANSI(text).ToString()
			out := cmd.OutOrStdout()
			lines := attrtext.SplitColumns(seq, maxInt, false, true)
			if n := len(lines); n > 1 && lines[n-1].Len() == 0 {
				// text ended with a newline
				lines = lines[:n-1]
			}
			for _, line := range lines {
				fmt.Fprintln(out, encode(method.SliceColumns(line, start, end)))
			}
			return nil
		},
	}
}

const maxInt = int(^uint(0) >> 1)
