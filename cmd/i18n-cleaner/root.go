// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/i18n-cleaner/pkg/config"
	"github.com/walteh/i18n-cleaner/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flags shared by every command
type rootOpts struct {
	configFile     string
	include        []string
	exclude        []string
	replacePattern string
	replacement    string
	backup         bool
	mode           string
	encoding       string
	concurrency    int
	dryRun         bool
	debug          bool
	root           string
}

// newRootCmd builds the command tree writing user output to stdout and
// debug logs to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "i18n-cleaner",
		Short: "Remove i18n function calls from JavaScript and TypeScript sources",
		Long: `i18n-cleaner rewrites source files so translation calls such as t("Hello")
become their plain string argument, and drops the import and hook lines that
only existed to support them.

Configuration is read from package.json ("i18n-cleaner" key),
i18n-cleaner.config.{json,yaml,yml,toml,hcl} or .i18n-cleanerrc in the project
root, then overridden by flags.`,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(stderr, opts.debug)
			ctx := logger.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, log.New(stdout, logger))
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts, false)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, opts)

	cmd.AddCommand(
		newCheckCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file path (searched in --root when empty)")
	flags.StringArrayVarP(&opts.include, "include", "i", nil, "glob of files to process, replaces the configured list (repeatable)")
	flags.StringArrayVarP(&opts.exclude, "exclude", "e", nil, "glob of paths to skip, added to the configured list (repeatable)")
	flags.StringVarP(&opts.replacePattern, "replace-pattern", "r", "", "marker function name to unwrap, added to the configured rules")
	flags.StringVar(&opts.replacement, "replacement", "", "replacement template for --replace-pattern, supports ${quote} and ${text}")
	flags.BoolVarP(&opts.backup, "backup", "b", false, "write <file>.bak before modifying a file")
	flags.StringVarP(&opts.mode, "mode", "m", "", "argument mode: strict or permissive")
	flags.StringVar(&opts.encoding, "encoding", "", "character set of the source files")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", config.DefaultConcurrency, "number of files processed at once")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print a diff instead of writing files")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	flags.StringVar(&opts.root, "root", ".", "project root; globs are relative to it")
}

// overrides returns the flag values the user actually set
func (o *rootOpts) overrides(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var ov config.Overrides

	if flags.Changed("include") {
		ov.Include = o.include
	}
	if flags.Changed("exclude") {
		ov.Exclude = o.exclude
	}
	if flags.Changed("replace-pattern") {
		ov.ReplacePattern = &o.replacePattern
		if flags.Changed("replacement") {
			ov.Replacement = &o.replacement
		}
	}
	if flags.Changed("backup") {
		ov.Backup = &o.backup
	}
	if flags.Changed("mode") {
		ov.ArgumentMode = &o.mode
	}
	if flags.Changed("encoding") {
		ov.Encoding = &o.encoding
	}
	if flags.Changed("concurrency") {
		ov.Concurrency = &o.concurrency
	}
	if flags.Changed("dry-run") {
		ov.DryRun = &o.dryRun
	}
	return ov
}

// resolveConfig merges defaults, the config file and the flags
func (o *rootOpts) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	root, err := filepath.Abs(o.root)
	if err != nil {
		return nil, errors.Errorf("resolving root %q: %w", o.root, err)
	}
	o.root = root

	return config.Resolve(cmd.Context(), config.Options{
		Path:      o.configFile,
		Dir:       root,
		Overrides: o.overrides(cmd),
	})
}

// setupLogging creates the debug logger; without --debug only warnings and
// errors reach it
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
