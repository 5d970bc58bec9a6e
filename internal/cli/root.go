// Package cli implements the enumstatus command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/enumstatus/internal/blog"
	"github.com/mesh-intelligence/enumstatus/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks failures of the environment (filesystem, database) as
// opposed to bad invocations, which exit with exitUserError.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	output    string
	verbose   bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	flags   rootFlags
	dataDir string
	output  string
	logger  *slog.Logger
	stderr  io.Writer
}

// openStore opens the blog store in the resolved data directory.
func (a *app) openStore(ctx context.Context) (*blog.Store, error) {
	store, err := blog.Open(ctx, blog.Config{DataDir: a.dataDir}, a.logger)
	if err != nil {
		return nil, sysErrorf("open store: %w", err)
	}
	return store, nil
}

// NewRootCmd creates the top-level command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:           "enumstatus",
		Short:         "Inspect enum status declarations and run the blog status example",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		a.stderr = cmd.ErrOrStderr()
		return a.setup(root)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.StringVarP(&a.flags.output, "output", "o", defaultOutput, "output format: text, json or yaml")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newLookupCmd(a))
	root.AddCommand(newPostCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newLogCmd(a))

	return root
}

// setup resolves directories, loads config.yaml and builds the logger.
func (a *app) setup(root *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErrorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir, root.PersistentFlags())
	if err != nil {
		return sysErrorf("load config: %w", err)
	}

	a.dataDir, err = paths.ResolveDataDir(a.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysErrorf("resolve data dir: %w", err)
	}

	a.output = cfg.GetString(cfgKeyOutput)
	if !validOutput(a.output) {
		return fmt.Errorf("unknown output format %q (valid: text, json, yaml)", a.output)
	}

	level := parseLogLevel(cfg.GetString(cfgKeyLogLevel))
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		slog.String("config_dir", configDir),
		slog.String("data_dir", a.dataDir),
		slog.String("output", a.output),
	)
	return nil
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:]))
}

func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
