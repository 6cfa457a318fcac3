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
	"regexp"
	"strings"
)

// LineFilter drops lines whose trimmed text matches any of its patterns
type LineFilter struct {
	patterns []*regexp.Regexp
}

// NewLineFilter compiles patterns as regular expressions, unescaped. The first
// invalid pattern fails the whole filter.
func NewLineFilter(patterns []string) (*LineFilter, error) {
	f := &LineFilter{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, newPatternError(i, p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// RemoveLines compiles patterns and filters content in one call
func RemoveLines(content string, patterns []string) (string, error) {
	f, err := NewLineFilter(patterns)
	if err != nil {
		return "", err
	}
	return f.Filter(content).Content, nil
}

// Len returns the number of compiled patterns
func (f *LineFilter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.patterns)
}

// Filter splits on "\n" and keeps the raw text of every surviving line, so a
// "\r\n" file keeps its line endings. The empty segment after a final newline
// is the terminator, not a line, and is never tested.
func (f *LineFilter) Filter(content string) FilterResult {
	if f.Len() == 0 {
		return FilterResult{Content: content}
	}

	lines := strings.Split(content, "\n")
	last := len(lines) - 1

	kept := make([]string, 0, len(lines))
	removed := 0
	for i, line := range lines {
		if i == last && line == "" {
			kept = append(kept, line)
			continue
		}
		if f.matches(strings.TrimSpace(line)) {
			removed++
			continue
		}
		kept = append(kept, line)
	}

	if removed == 0 {
		return FilterResult{Content: content}
	}
	return FilterResult{Content: strings.Join(kept, "\n"), Removed: removed}
}

func (f *LineFilter) matches(line string) bool {
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
