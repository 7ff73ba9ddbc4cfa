// typeshare generates type definitions for other languages from Rust
// structs and enums.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phobologic/typeshare/internal/backend"
	"github.com/phobologic/typeshare/internal/config"
	"github.com/phobologic/typeshare/internal/generate"
	"github.com/phobologic/typeshare/internal/ir"
	"github.com/phobologic/typeshare/internal/logging"
)

var version = "dev"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}

func usageError(err error) *ExitError {
	return &ExitError{Code: exitUsage, Err: err}
}

// printError writes err and any hints attached to it.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		_, _ = fmt.Fprintf(w, "hint: %s\n", hint)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	// Flag and argument errors from cobra.
	return usageError(err)
}

type rootOptions struct {
	configPath  string
	options     map[string]string
	outDir      string
	showVersion bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typeshare [flags] <input.rs|dir>",
		Short: "Generate types for other languages from Rust structs and enums",
		Long: `typeshare reads a Rust source file and emits matching type definitions
for the selected backend. Given a directory and --out-dir, every Rust file
below it is converted to one output file.

Backends: ` + strings.Join(backend.Names(), ", "),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				_, _ = fmt.Fprintf(stdout, "typeshare %s\n", version)
				return nil
			}
			if len(args) == 0 {
				return usageError(errors.WithHint(errors.New("no input given"),
					"pass a Rust file, or a directory together with --out-dir"))
			}
			return generateCmd(cmd, opts, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringP("lang", "l", config.DefaultLang, "backend: "+strings.Join(backend.Names(), "|")+" (or ts)")
	f.BoolP("use-marker", "m", false, "only generate items annotated with #[typeshare]")
	f.StringToStringVarP(&opts.options, "option", "o", nil, "backend option as key=value (repeatable)")
	f.String("swift-prefix", "", "prefix for generated Swift type names")
	f.String("java-package", "", "package declaration for generated Java")
	f.StringVar(&opts.configPath, "config", "", "config file (default ./typeshare.{toml,yaml,json})")
	f.BoolP("verbose", "v", false, "debug logging to stderr")
	f.Bool("log-json", false, "log as JSON")
	f.BoolVarP(&opts.showVersion, "version", "V", false, "show version and exit")
	f.StringVar(&opts.outDir, "out-dir", "", "write one file per input into this directory")

	cmd.AddCommand(newInitCommand(stdout, stderr))

	return cmd
}

func generateCmd(cmd *cobra.Command, opts *rootOptions, input string, stdout, stderr io.Writer) error {
	v, err := config.New(".", opts.configPath)
	if err != nil {
		return usageError(err)
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return usageError(err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return usageError(err)
	}

	log := logging.New(stderr, cfg.Log.Verbose, cfg.Log.JSON)
	defer func() { _ = log.Sync() }()
	if cfg.File != "" {
		log.Debugw("loaded config", logging.FieldFile, cfg.File)
	}

	genOpts := generate.Options{
		Backend:        cfg.Lang,
		UseMarker:      cfg.UseMarker,
		Version:        version,
		BackendOptions: cfg.BackendOptions(opts.options),
		Logger:         log,
	}

	info, err := os.Stat(input)
	if err != nil {
		return &ExitError{Code: exitFailure, Err: errors.Wrapf(ir.ErrSourceRead, "%s: %v", input, err)}
	}
	if info.IsDir() {
		if opts.outDir == "" {
			return usageError(errors.WithHint(errors.Newf("%s is a directory", input),
				"directory input needs --out-dir"))
		}
		return runBatch(cmd.Context(), input, opts.outDir, genOpts, stderr, log)
	}

	g, err := generate.New(genOpts)
	if err != nil {
		return classify(err)
	}

	if opts.outDir == "" {
		return classify(g.File(cmd.Context(), input, stdout))
	}

	out := filepath.Join(opts.outDir, strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))+g.Extension())
	var buf strings.Builder
	if err := g.File(cmd.Context(), input, &buf); err != nil {
		return classify(err)
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return &ExitError{Code: exitFailure, Err: errors.Wrapf(err, "creating %s", opts.outDir)}
	}
	if err := os.WriteFile(out, []byte(buf.String()), 0o644); err != nil {
		return &ExitError{Code: exitFailure, Err: errors.Wrapf(err, "writing %s", out)}
	}
	_, _ = fmt.Fprintf(stderr, "wrote %s\n", out)
	return nil
}

func runBatch(ctx context.Context, root, outDir string, opts generate.Options, stderr io.Writer, log *zap.SugaredLogger) error {
	results, err := generate.Batch(ctx, root, outDir, opts)
	if err != nil {
		return classify(err)
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Errorw("generation failed", logging.FieldFile, r.Path, zap.Error(r.Err))
		}
	}
	_, _ = fmt.Fprintf(stderr, "wrote %d of %d files to %s\n", len(results)-failed, len(results), outDir)
	if failed > 0 {
		return &ExitError{Code: exitFailure, Message: fmt.Sprintf("%d of %d files failed", failed, len(results))}
	}
	return nil
}

// classify maps pipeline errors to exit codes. A nil error stays nil.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ir.ErrUnknownBackend):
		return usageError(err)
	default:
		return &ExitError{Code: exitFailure, Err: err}
	}
}
