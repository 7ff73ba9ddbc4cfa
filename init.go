package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phobologic/typeshare/internal/backend"
	"github.com/phobologic/typeshare/internal/config"
)

// newInitCommand implements `typeshare init`, which writes a starter
// typeshare.toml.
func newInitCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		dryRun bool
		force  bool
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter typeshare.toml",
		Long: `Write a starter typeshare.toml listing every setting with its default.
dir defaults to the current directory. An existing file is left alone
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := backend.Lookup(lang); err != nil {
				return usageError(err)
			}
			content := starterConfig(lang)

			if dryRun {
				_, _ = fmt.Fprint(stdout, content)
				return nil
			}

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.FileName+".toml")

			if _, err := os.Stat(path); err == nil && !force {
				return usageError(errors.WithHint(errors.Newf("%s already exists", path),
					"use --force to overwrite it"))
			}

			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return &ExitError{Code: exitFailure, Err: errors.Wrapf(err, "writing %s", path)}
			}

			_, _ = fmt.Fprintf(stderr, "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the file instead of writing it")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVarP(&lang, "lang", "l", config.DefaultLang, "backend to select in the file")

	return cmd
}

// starterConfig renders a config file selecting lang. It is a pure function
// for easy testing.
func starterConfig(lang string) string {
	var b strings.Builder
	b.WriteString("# typeshare configuration. Flags and TYPESHARE_* environment\n")
	b.WriteString("# variables override these values.\n\n")
	fmt.Fprintf(&b, "# One of: %s\n", strings.Join(backend.Names(), ", "))
	fmt.Fprintf(&b, "%s = %q\n\n", config.KeyLang, lang)
	b.WriteString("# Only generate items annotated with #[typeshare].\n")
	fmt.Fprintf(&b, "%s = false\n\n", config.KeyUseMarker)
	b.WriteString("# Options forwarded to the backend as-is.\n")
	b.WriteString("[options]\n\n")
	b.WriteString("[swift]\n")
	b.WriteString("# Prepended to every generated Swift type name.\n")
	b.WriteString("prefix = \"\"\n\n")
	b.WriteString("[java]\n")
	b.WriteString("# Package declaration for generated Java.\n")
	b.WriteString("package = \"\"\n\n")
	b.WriteString("[log]\n")
	b.WriteString("verbose = false\n")
	b.WriteString("json = false\n")
	return b.String()
}
