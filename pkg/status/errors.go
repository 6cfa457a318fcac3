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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// FileOp names the step a FileError happened in
type FileOp string

const (
	OpRead   FileOp = "read"
	OpDecode FileOp = "decode"
	OpEncode FileOp = "encode"
	OpWrite  FileOp = "write"
	OpBackup FileOp = "backup"
)

// ⚠️ FileError reports a failure on a single source file. It is recorded
// against that file and never stops the run.
type FileError struct {
	Op   FileOp
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func newFileError(op FileOp, path string, err error) error {
	return errors.WithStack(&FileError{Op: op, Path: path, Err: err})
}
