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

package text

import (
	"gitlab.com/tozd/go/errors"
)

// CleanerOptions lists everything a Cleaner compiles up front
type CleanerOptions struct {
	RemoveImports      []string
	RemoveDeclarations []string
	ReplacePatterns    []ReplacePattern
	Mode               ArgumentMode
}

// CleanResult contains the outcome of cleaning one buffer
type CleanResult struct {
	Content             string
	RemovedImports      int
	RemovedDeclarations int
	Replacements        int
	Changed             bool
}

// Cleaner runs the per-file pipeline: import removal, declaration removal,
// then call substitution. It holds only compiled, read-only state.
type Cleaner struct {
	imports      *LineFilter
	declarations *LineFilter
	substituter  *Substituter
}

// NewCleaner compiles all patterns. Any PatternError is returned wrapped with
// the name of the list it came from.
func NewCleaner(opts CleanerOptions) (*Cleaner, error) {
	imports, err := NewLineFilter(opts.RemoveImports)
	if err != nil {
		return nil, errors.Errorf("compiling removeImports: %w", err)
	}

	declarations, err := NewLineFilter(opts.RemoveDeclarations)
	if err != nil {
		return nil, errors.Errorf("compiling removeDeclarations: %w", err)
	}

	substituter, err := NewSubstituter(opts.ReplacePatterns, opts.Mode)
	if err != nil {
		return nil, errors.Errorf("compiling replacePatterns: %w", err)
	}

	return &Cleaner{
		imports:      imports,
		declarations: declarations,
		substituter:  substituter,
	}, nil
}

// Clean runs the pipeline over content
func (c *Cleaner) Clean(content string) CleanResult {
	imports := c.imports.Filter(content)
	declarations := c.declarations.Filter(imports.Content)
	substituted := c.substituter.Substitute(declarations.Content)

	return CleanResult{
		Content:             substituted.Content,
		RemovedImports:      imports.Removed,
		RemovedDeclarations: declarations.Removed,
		Replacements:        substituted.Count,
		Changed:             substituted.Content != content,
	}
}
