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

package operation

import (
	"context"
	"sync"

	"github.com/walteh/i18n-cleaner/pkg/status"
)

// 🧹 CleanOperation runs the cleaner over every file in Options.Files
type CleanOperation struct {
	BaseOperation

	mu      sync.Mutex
	summary Summary
}

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) (*CleanOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &CleanOperation{
		BaseOperation: base,
	}, nil
}

// 🏃 Execute processes every file. A failing file is recorded and never stops
// the run; only cancellation of ctx returns an error.
func (op *CleanOperation) Execute(ctx context.Context) error {
	logger := op.logger(ctx)
	logger.Debug().
		Int("files", len(op.Files)).
		Int("concurrency", op.Concurrency).
		Bool("dry_run", op.DryRun).
		Msg("cleaning files")

	// Start tracking progress
	op.StatusMgr.StartOperation(ctx, len(op.Files))
	defer op.StatusMgr.FinishOperation(ctx)

	processed := 0
	err := forEach(ctx, len(op.Files), op.Concurrency, func(ctx context.Context, i int) {
		info := op.processFile(ctx, op.Files[i])

		op.StatusMgr.TrackFile(ctx, info)
		if op.Reporter != nil {
			op.Reporter.LogFile(ctx, info)
		}

		op.mu.Lock()
		op.summary.add(info)
		processed++
		op.StatusMgr.UpdateProgress(ctx, processed)
		op.mu.Unlock()
	})

	op.mu.Lock()
	op.summary.sort()
	op.mu.Unlock()

	return err
}

// 📊 Summary returns the outcome of the last Execute
func (op *CleanOperation) Summary() Summary {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.summary
}

// 📄 processFile runs read, clean, backup and write for one file
func (op *CleanOperation) processFile(ctx context.Context, path string) status.FileInfo {
	logger := op.logger(ctx)
	info := status.FileInfo{Path: path}

	fail := func(err error) status.FileInfo {
		logger.Debug().Err(err).Str("file", path).Msg("file failed")
		info.Status = status.StatusFailed
		info.Error = err
		return info
	}

	content, err := op.FileMgr.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}

	result := op.Cleaner.Clean(content)
	info.Replacements = result.Replacements
	info.RemovedImports = result.RemovedImports
	info.RemovedDeclarations = result.RemovedDeclarations

	if !result.Changed {
		info.Status = status.StatusUnchanged
		return info
	}

	if op.DryRun {
		info.Status = status.StatusPending
		if op.Reporter != nil {
			op.Reporter.Diff(status.Diff(path, content, result.Content))
		}
		return info
	}

	if op.Backup {
		backup, err := op.FileMgr.BackupFile(ctx, path)
		if err != nil {
			return fail(err)
		}
		info.BackupPath = backup
	}

	if err := op.FileMgr.WriteFileAtomic(ctx, path, result.Content); err != nil {
		return fail(err)
	}

	info.Status = status.StatusModified
	return info
}

// 🎯 Clean runs a CleanOperation over opts.Files and returns its summary
func Clean(ctx context.Context, opts Options) (Summary, error) {
	op, err := NewCleanOperation(opts)
	if err != nil {
		return Summary{}, err
	}
	err = op.Execute(ctx)
	return op.Summary(), err
}
