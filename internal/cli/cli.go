package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/configsnap/internal/app"
	"github.com/specialistvlad/configsnap/internal/sink"
	"github.com/spf13/cobra"
)

// Exit codes returned through ExitError.
const (
	CodeDrift = 1
	CodeUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: CodeUsage, Message: err.Error()}
}

type flags struct {
	out        string
	properties string
	logFormat  string
	logLevel   string
	workers    int
	cacheSize  int
}

// NewRootCommand returns the configsnap command tree. Output, help text and
// logs are written to outW.
func NewRootCommand(outW io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "configsnap",
		Short: "Render build configuration snapshots",
		Long: `configsnap renders the analyzer configuration a build exposes (global
options, additional texts, parse options, syntax trees and compilation
metadata) into plain text snapshot files.

Snapshots are only produced when the global option
build_property.PodNetEnableAnalyzerConfigSnapshot is "true".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(outW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.out, "out", app.DefaultOutDir, "Directory the snapshot files are written to.")
	pf.StringVar(&f.properties, "properties", "", "Optional dotenv file of build properties.")
	pf.StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.IntVar(&f.workers, "workers", app.DefaultWorkers, "Number of snapshot stages evaluated concurrently.")
	pf.IntVar(&f.cacheSize, "cache-size", app.DefaultCacheSize, "Formatted results each stage remembers.")

	root.AddCommand(
		&cobra.Command{
			Use:   "generate HOST_PATH...",
			Short: "Write snapshots for the host state to --out",
			Args:  hostPathArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := f.newApp(outW, args)
				if err != nil {
					return err
				}
				_, err = a.Generate(cmd.Context())
				return err
			},
		},
		&cobra.Command{
			Use:   "check HOST_PATH...",
			Short: "Fail when the snapshots in --out are out of date",
			Args:  hostPathArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := f.newApp(outW, args)
				if err != nil {
					return err
				}
				err = a.Check(cmd.Context())
				var drift *sink.DriftError
				if errors.As(err, &drift) {
					return &ExitError{Code: CodeDrift, Message: drift.Error()}
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "watch HOST_PATH...",
			Short: "Regenerate snapshots whenever a host file changes",
			Args:  hostPathArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := f.newApp(outW, args)
				if err != nil {
					return err
				}
				return a.Watch(cmd.Context())
			},
		},
	)
	return root
}

func hostPathArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError(errors.New("at least one HOST_PATH is required"))
	}
	return nil
}

func (f *flags) newApp(outW io.Writer, hostPaths []string) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		HostPaths:      hostPaths,
		OutDir:         f.out,
		PropertiesPath: f.properties,
		LogFormat:      f.logFormat,
		LogLevel:       f.logLevel,
		Workers:        f.workers,
		CacheSize:      f.cacheSize,
	})
	if err != nil {
		return nil, usageError(err)
	}
	if f.workers < 1 || f.cacheSize < 1 {
		return nil, usageError(errors.New("workers and cache-size must be at least 1"))
	}
	return app.NewApp(outW, cfg, nil), nil
}

// Execute runs the command tree over args. Errors raised before a command
// starts running, such as an unknown command, are reported as usage errors.
func Execute(ctx context.Context, args []string, outW io.Writer) error {
	root := NewRootCommand(outW)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if cmd == nil || cmd == root {
		return usageError(fmt.Errorf("%w\nRun 'configsnap --help' for usage.", err))
	}
	return err
}
