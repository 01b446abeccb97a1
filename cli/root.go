// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/config"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/logs"
)

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"output":        config.KeyOutput,
	"style":         config.KeyStyle,
	"hide-original": config.KeyHideOriginal,
	"dry-run":       config.KeyDryRun,
	"log-level":     config.KeyLogLevel,
	"log-file":      config.KeyLogFile,
}

// NewRootCommand builds the minecount command. Boards are printed to stdout;
// diagnostics and logs go to stderr. Each command owns its own viper instance.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "minecount [flags] BOARD_FILE",
		Short: "Annotate a minefield with the number of adjacent mines",
		Long: `minecount reads a board made of '*' (mine) and '.' (blank) cells, one row
per line, prints it, replaces every blank with the number of mines around it
(blanks with none stay '.'), prints the result and writes it to the output file.`,
		Args:          exactlyOneBoard,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger, closer := logs.New(cfg.Log, stderr)
			defer closer.Close()
			defer logger.Sync()

			p := Pipeline{Source: args[0], Config: cfg, Out: cmd.OutOrStdout(), Logger: logger}
			return p.Run()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.StringP("output", "o", config.DefaultOutput, "where to write the annotated board (overwritten)")
	flags.String("style", config.DefaultStyle, "console style: plain, spaced or coordinates")
	flags.Bool("hide-original", false, "print only the annotated board")
	flags.Bool("dry-run", false, "do not write the output file")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this file, rotated")
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("cli: bind flag %s: %v", name, err))
		}
	}

	return cmd
}

// exactlyOneBoard accepts a single positional argument: the board file.
func exactlyOneBoard(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

// Execute runs the command with args and returns the process exit code.
// On failure it prints a diagnostic to stderr, followed by usage for wrong invocations.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(stderr, Describe(err))

	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}
