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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFilter_Filter(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		patterns    []string
		want        string
		wantRemoved int
	}{
		{
			name:     "no_patterns_is_identity",
			content:  "a\r\n  b  \r\n\n",
			patterns: nil,
			want:     "a\r\n  b  \r\n\n",
		},
		{
			name:        "drop_import_by_substring",
			content:     "import React from 'react';\nimport { useTranslation } from 'react-i18next';\nconst a = 1;\n",
			patterns:    []string{"react-i18next"},
			want:        "import React from 'react';\nconst a = 1;\n",
			wantRemoved: 1,
		},
		{
			name:        "regex_syntax_is_honoured",
			content:     "import { useTranslation } from 'react-i18next';\nimport { Trans } from 'react-i18next'\nimport x from 'y';\n",
			patterns:    []string{`import .* from 'react-i18next'`},
			want:        "import x from 'y';\n",
			wantRemoved: 2,
		},
		{
			name:        "indented_lines_are_trimmed_before_matching",
			content:     "function A() {\n    const { t } = useTranslation();   \n  return null;\n}\n",
			patterns:    []string{`^const \{ t \} = useTranslation\(\);$`},
			want:        "function A() {\n  return null;\n}\n",
			wantRemoved: 1,
		},
		{
			name:        "surviving_lines_keep_order_and_text",
			content:     "c\n  keep 1\nb\n\tkeep 2\na",
			patterns:    []string{"^a$", "^b$", "^c$"},
			want:        "  keep 1\n\tkeep 2",
			wantRemoved: 3,
		},
		{
			name:        "crlf_endings_survive",
			content:     "a\r\nb\r\nc\r\n",
			patterns:    []string{"^b$"},
			want:        "a\r\nc\r\n",
			wantRemoved: 1,
		},
		{
			name:        "final_terminator_is_not_a_line",
			content:     "a\n\nb\n",
			patterns:    []string{"^$"},
			want:        "a\nb\n",
			wantRemoved: 1,
		},
		{
			name:        "every_line_removed",
			content:     "x1\nx2\n",
			patterns:    []string{"x"},
			want:        "\n",
			wantRemoved: 2,
		},
		{
			name:     "no_match",
			content:  "const a = 1;\n",
			patterns: []string{"react-i18next"},
			want:     "const a = 1;\n",
		},
		{
			name:     "empty_content",
			content:  "",
			patterns: []string{"x"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewLineFilter(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, len(tt.patterns), f.Len())

			got := f.Filter(tt.content)
			assert.Equal(t, tt.want, got.Content, "content should match")
			assert.Equal(t, tt.wantRemoved, got.Removed, "removed count should match")
		})
	}
}

func TestRemoveLines(t *testing.T) {
	got, err := RemoveLines("keep\ndrop me\n", []string{"drop"})
	require.NoError(t, err)
	assert.Equal(t, "keep\n", got)

	same, err := RemoveLines("keep\ndrop me\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "keep\ndrop me\n", same)
}

func TestRemoveLines_InvalidPattern(t *testing.T) {
	_, err := RemoveLines("a\n", []string{"ok", "useTranslation(", "also ok"})
	require.Error(t, err)

	var perr *PatternError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Index)
	assert.Equal(t, "useTranslation(", perr.Pattern)
	assert.Contains(t, err.Error(), `"useTranslation("`, "error should name the offending pattern")
}

func TestLineFilter_NilIsNoop(t *testing.T) {
	var f *LineFilter
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, FilterResult{Content: "a\n"}, f.Filter("a\n"))
}
