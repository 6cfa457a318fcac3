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

package status

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // content changed and was written
	StatusPending              // content would change, dry run
	StatusUnchanged            // nothing to rewrite
	StatusFailed               // read, backup or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusPending:
		return "pending"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains what happened to a file
type FileInfo struct {
	Path                string     // path relative to the manager root
	Status              FileStatus // outcome
	Replacements        int        // marker calls rewritten
	RemovedImports      int        // import lines dropped
	RemovedDeclarations int        // declaration lines dropped
	BackupPath          string     // set when a backup was written
	Error               error      // set when Status is StatusFailed
}

// 💾 FileManager handles all file system operations on source files
type FileManager interface {
	// ReadFile reads and decodes a file
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFileAtomic encodes content and replaces the file through a rename
	WriteFileAtomic(ctx context.Context, path string, content string) error

	// BackupFile copies the file's current bytes next to it and returns the
	// backup path
	BackupFile(ctx context.Context, path string) (string, error)
}

// 📈 StatusReporter tracks file status and reports progress
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🖥️ Console receives the progress and summary lines meant for the user
type Console interface {
	Progress(msg string)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string            // Base directory for all operations
	logger    *zerolog.Logger   // Logger for status updates
	formatter FileFormatter     // Formatter for status messages
	encoding  encoding.Encoding // nil for UTF-8 passthrough
	console   Console           // nil when only zerolog gets progress

	// Status tracking
	mu    sync.Mutex
	files map[string]FileInfo

	// Progress tracking
	total     int
	processed int
}

// Option configures a Manager
type Option func(*Manager)

// WithEncoding sets the character set source files are stored in
func WithEncoding(enc encoding.Encoding) Option {
	return func(m *Manager) {
		m.encoding = enc
	}
}

// WithConsole prints progress and the final totals to c as well as to zerolog
func WithConsole(c Console) Option {
	return func(m *Manager) {
		m.console = c
	}
}

// 🏭 New creates a new status manager
func New(baseDir string, logger *zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		baseDir:   filepath.Clean(baseDir),
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return "", newFileError(OpRead, path, err)
	}

	content, err := decode(m.encoding, raw)
	if err != nil {
		return "", newFileError(OpDecode, path, err)
	}
	return content, nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content string) error {
	absPath := m.getAbsPath(path)

	raw, err := encode(m.encoding, content)
	if err != nil {
		return newFileError(OpEncode, path, err)
	}

	// keep the permissions of the file being replaced
	mode := fs.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := filepath.Join(filepath.Dir(absPath), "."+filepath.Base(absPath)+".tmp")

	// Write to temp file
	if err := os.WriteFile(tempPath, raw, mode); err != nil {
		return newFileError(OpWrite, path, errors.Errorf("writing temp file: %w", err))
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return newFileError(OpWrite, path, errors.Errorf("renaming temp file: %w", err))
	}

	return nil
}

func (m *Manager) BackupFile(ctx context.Context, path string) (string, error) {
	absPath := m.getAbsPath(path)
	backupPath := absPath + BackupSuffix

	info, err := os.Stat(absPath)
	if err != nil {
		return "", newFileError(OpBackup, path, err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return "", newFileError(OpBackup, path, err)
	}

	// a backup from an earlier run is overwritten
	if err := os.WriteFile(backupPath, raw, info.Mode().Perm()); err != nil {
		return "", newFileError(OpBackup, path, errors.Errorf("creating backup: %w", err))
	}

	return path + BackupSuffix, nil
}

// BackupSuffix is appended to a file name to form its backup
const BackupSuffix = ".bak"

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info

	event := m.logger.Info()
	msg := m.formatter.FormatFileOperation(info)
	if info.Error != nil {
		event = m.logger.Error().Err(info.Error)
		msg = m.formatter.FormatError(info.Path, info.Error)
	}
	event.
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(msg)
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	msg := m.formatter.FormatProgress(0, total)
	m.logger.Info().Int("total", total).Msg(msg)
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	msg := m.formatter.FormatProgress(processed, m.total)
	if m.console != nil {
		m.console.Progress(msg)
	}
	m.logger.Info().
		Int("processed", processed).
		Int("total", m.total).
		Msg(msg)
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[FileStatus]int)
	for _, info := range m.files {
		counts[info.Status]++
	}

	msg := m.formatter.FormatSummary(m.total, counts[StatusModified]+counts[StatusPending], counts[StatusUnchanged], counts[StatusFailed])
	if m.console != nil {
		m.console.Progress(msg)
	}
	m.logger.Info().
		Int("total", m.total).
		Int("changed", counts[StatusModified]+counts[StatusPending]).
		Int("unchanged", counts[StatusUnchanged]).
		Int("failed", counts[StatusFailed]).
		Msg(msg)
}
