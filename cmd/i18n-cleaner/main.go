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
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/walteh/i18n-cleaner/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// errFilesFailed is returned when at least one file could not be processed
	errFilesFailed = errors.Base("some files failed")

	// errWouldChange is returned by check when at least one file is not clean
	errWouldChange = errors.Base("some files would change")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	ui := log.New(stderr, zerolog.Nop())
	if errors.Is(err, errWouldChange) {
		ui.Warning(err.Error())
	} else {
		ui.Error(err.Error())
	}
	return 1
}
