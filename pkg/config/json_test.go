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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/i18n-cleaner/pkg/text"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, file *File)
	}{
		{
			name:   "valid_minimal_json",
			config: `{"include": ["src/**/*.ts"]}`,
			check: func(t *testing.T, file *File) {
				assert.Equal(t, []string{"src/**/*.ts"}, file.Include)
				assert.Nil(t, file.Exclude)
				assert.Nil(t, file.ReplacePatterns)
				assert.Nil(t, file.Backup)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"include": ["src/**/*.{js,ts,jsx,tsx}"],
				"exclude": ["node_modules", "dist", "coverage"],
				"replacePatterns": [
					{"pattern": "t", "replacement": "${quote}${text}${quote}"},
					{"pattern": "$t", "replacement": "${text}"}
				],
				"removeImports": ["react-i18next"],
				"removeDeclarations": ["useTranslation\\(\\)"],
				"backup": true,
				"argumentMode": "strict",
				"encoding": "utf-8",
				"concurrency": 2
			}`,
			check: func(t *testing.T, file *File) {
				assert.Equal(t, []string{"node_modules", "dist", "coverage"}, file.Exclude)
				assert.Equal(t, []FilePattern{
					{Pattern: "t", Replacement: ptr(text.DefaultReplacement)},
					{Pattern: "$t", Replacement: ptr("${text}")},
				}, file.ReplacePatterns)
				assert.Equal(t, []string{"react-i18next"}, file.RemoveImports)
				assert.Equal(t, []string{`useTranslation\(\)`}, file.RemoveDeclarations)
				require.NotNil(t, file.Backup)
				assert.True(t, *file.Backup)
				require.NotNil(t, file.Concurrency)
				assert.Equal(t, 2, *file.Concurrency)
			},
		},
		{
			name: "invalid_json_syntax",
			config: `{
				"include": ["src"],
			}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_field",
			config:      `{"replace_patterns": []}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:   "empty_json",
			config: "{}",
			check: func(t *testing.T, file *File) {
				assert.Equal(t, &File{}, file)
			},
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, file)
			}
		})
	}
}

// 🧪 TestJSONParserSelection tests JSON parser file detection
func TestJSONParserSelection(t *testing.T) {
	parser := &JSONParser{}

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{
			name:     "json_extension",
			filename: "i18n-cleaner.config.json",
			want:     true,
		},
		{
			name:     "uppercase_extension",
			filename: "config.JSON",
			want:     true,
		},
		{
			name:     "package_json_is_not_plain_json",
			filename: "/repo/package.json",
			want:     false,
		},
		{
			name:     "yaml_extension",
			filename: "config.yaml",
			want:     false,
		},
		{
			name:     "no_extension",
			filename: "config",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.CanParse(tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}
