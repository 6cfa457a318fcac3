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
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/i18n-cleaner/pkg/log"
	"github.com/walteh/i18n-cleaner/pkg/operation"
	"github.com/walteh/i18n-cleaner/pkg/status"
	"github.com/walteh/i18n-cleaner/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// runClean resolves the config, collects the files and cleans them. check
// forces a dry run and fails when anything would change.
func runClean(cmd *cobra.Command, opts *rootOpts, check bool) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	ui := log.FromContext(ctx)

	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	if check {
		cfg.DryRun = true
	}
	if cfg.Source != "" {
		ui.Infof("loaded config %s", cfg.Source)
	}

	// compile every pattern before touching any file
	cleaner, err := text.NewCleaner(cfg.CleanerOptions())
	if err != nil {
		return err
	}

	enc, err := status.LookupEncoding(cfg.Encoding)
	if err != nil {
		return errors.Errorf("resolving encoding: %w", err)
	}
	mgr := status.New(opts.root, logger, status.WithEncoding(enc), status.WithConsole(ui))

	files, err := operation.CollectFiles(ctx, opts.root, cfg.Include, cfg.Exclude)
	if err != nil {
		return errors.Errorf("collecting files: %w", err)
	}
	if len(files) == 0 {
		ui.Warningf("no files match %s", strings.Join(cfg.Include, ", "))
		return nil
	}

	if cfg.DryRun {
		ui.Header("dry run")
	}
	ui.Infof("found %d files", len(files))

	op, err := operation.NewCleanOperation(operation.Options{
		Files:       files,
		Cleaner:     cleaner,
		FileMgr:     mgr,
		StatusMgr:   mgr,
		Reporter:    ui,
		Backup:      cfg.Backup,
		DryRun:      cfg.DryRun,
		Concurrency: cfg.Concurrency,
	})
	if err != nil {
		return errors.Errorf("creating clean operation: %w", err)
	}

	runErr := operation.NewRunner(logger).Run(ctx, op)

	summary := op.Summary()
	ui.LogNewline()
	ui.Summary(summary.Total, summary.Changed, summary.Unchanged, summary.Failed)
	for _, f := range summary.Failures() {
		ui.Errorf("%s: %v", f.Path, f.Error)
	}

	if runErr != nil {
		return runErr
	}
	if summary.HasFailures() {
		return errors.Errorf("%d of %d files: %w", summary.Failed, summary.Total, errFilesFailed)
	}
	if check && summary.HasChanges() {
		return errors.Errorf("%d of %d files: %w", summary.Changed, summary.Total, errWouldChange)
	}

	if cfg.DryRun {
		ui.Successf("%d files would change", summary.Changed)
	} else {
		ui.Successf("%d files updated", summary.Changed)
	}
	return nil
}

// newCheckCmd creates the check command
func newCheckCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report files that still contain i18n calls without changing them",
		Long: `Check runs the cleaner as a dry run. It prints a diff for every file that
would change and exits with status 1 when there is at least one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts, true)
		},
	}
}
