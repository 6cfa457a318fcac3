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

	"github.com/rs/zerolog"
	"github.com/walteh/i18n-cleaner/pkg/status"
	"github.com/walteh/i18n-cleaner/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one unit of work the runner executes
type Operation interface {
	Execute(ctx context.Context) error
}

// 🧹 Cleaner rewrites the content of one file
type Cleaner interface {
	Clean(content string) text.CleanResult
}

// 📢 Reporter receives per-file output meant for the user
type Reporter interface {
	LogFile(ctx context.Context, info status.FileInfo)
	Diff(diff string)
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Files are the paths to process, relative to the file manager root
	Files []string

	// Cleaner is the compiled per-file pipeline, shared by all workers
	Cleaner Cleaner

	// FileMgr reads, backs up and writes files
	FileMgr status.FileManager

	// StatusMgr tracks outcomes and progress
	StatusMgr status.StatusReporter

	// Reporter prints per-file lines and diffs; optional
	Reporter Reporter

	// Backup copies each file to <file>.bak before rewriting it
	Backup bool

	// DryRun never writes; pending rewrites are reported as diffs
	DryRun bool

	// Concurrency bounds how many files are processed at once
	Concurrency int
}

// 🧱 BaseOperation holds the options shared by all operations
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation validates opts and fills defaults
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Cleaner == nil {
		return BaseOperation{}, errors.Errorf("cleaner is required")
	}
	if opts.FileMgr == nil {
		return BaseOperation{}, errors.Errorf("file manager is required")
	}
	if opts.StatusMgr == nil {
		return BaseOperation{}, errors.Errorf("status manager is required")
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return BaseOperation{Options: opts}, nil
}

func (op *BaseOperation) logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
