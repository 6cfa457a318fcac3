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

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/i18n-cleaner/pkg/status"
)

// 🎯 Logger prints user facing output to a console and mirrors every line to
// zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFile prints the outcome of one file
func (l *Logger) LogFile(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileLine(info))

	event := l.zlog.Info()
	if info.Error != nil {
		event = l.zlog.Error().Err(info.Error)
	}
	event.
		Str("file", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Int("removed_imports", info.RemovedImports).
		Int("removed_declarations", info.RemovedDeclarations).
		Str("backup", info.BackupPath).
		Msg("file processed")
}

// 📝 Diff prints a rendered diff as is
func (l *Logger) Diff(diff string) {
	if diff == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, diff)
}

// 📝 Progress prints a run progress line
func (l *Logger) Progress(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	color.New(color.FgMagenta).Fprintln(l.console, msg)
	l.zlog.Debug().Msg(msg)
}

// 📝 Summary prints the final counts of a run as a table
func (l *Logger) Summary(total, changed, unchanged, failed int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{
		{"files", "changed", "unchanged", "failed"},
		{strconv.Itoa(total), strconv.Itoa(changed), strconv.Itoa(unchanged), strconv.Itoa(failed)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(l.console).Render(); err != nil {
		l.zlog.Debug().Err(err).Msg("rendering summary table")
	}

	l.zlog.Info().
		Int("total", total).
		Int("changed", changed).
		Int("unchanged", unchanged).
		Int("failed", failed).
		Msg("run complete")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("i18n-cleaner")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(l.console).Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(l.console).Println(msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(l.console).Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"}).WithWriter(l.console).Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
