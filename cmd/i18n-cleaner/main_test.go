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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	dirtyComponent = "import React from 'react';\n" +
		"import { useTranslation } from 'react-i18next';\n" +
		"\n" +
		"export function Title() {\n" +
		"  const { t } = useTranslation();\n" +
		"  return <h1>{t(\"Welcome\")}</h1>;\n" +
		"}\n"

	cleanComponent = "import React from 'react';\n" +
		"\n" +
		"export function Title() {\n" +
		"  return <h1>{\"Welcome\"}</h1>;\n" +
		"}\n"
)

func init() {
	color.NoColor = true
	pterm.DisableStyling()
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(raw)
}

func TestRun_Clean(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		args     []string
		wantCode int
		validate func(t *testing.T, root string, res result)
	}{
		{
			name: "defaults_clean_src",
			files: map[string]string{
				"src/Title.tsx":               dirtyComponent,
				"src/util.ts":                 "export const a = 1;\n",
				"node_modules/lib/index.js":   "t(\"keep\")\n",
				"src/node_modules/x/index.js": "t(\"keep\")\n",
				"scripts/build.js":            "t(\"keep\")\n",
			},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, cleanComponent, readFile(t, root, "src/Title.tsx"))
				assert.Equal(t, "export const a = 1;\n", readFile(t, root, "src/util.ts"))
				assert.Equal(t, "t(\"keep\")\n", readFile(t, root, "node_modules/lib/index.js"))
				assert.Equal(t, "t(\"keep\")\n", readFile(t, root, "src/node_modules/x/index.js"))
				assert.Equal(t, "t(\"keep\")\n", readFile(t, root, "scripts/build.js"))
				assert.Contains(t, res.stdout, "src/Title.tsx")
				assert.Contains(t, res.stdout, "1 files updated")
				assert.NoFileExists(t, filepath.Join(root, "src/Title.tsx.bak"))
			},
		},
		{
			name: "progress_and_summary_on_stdout",
			files: map[string]string{
				"src/a.ts": "t('a')\n",
				"src/b.ts": "export const b = 1;\n",
			},
			validate: func(t *testing.T, root string, res result) {
				assert.Contains(t, res.stdout, "Progress: 1/2 (50%)")
				assert.Contains(t, res.stdout, "Progress: 2/2 (100%)")
				assert.Contains(t, res.stdout, "Done: 2 files, 1 changed, 1 unchanged")
			},
		},
		{
			name:  "backup_flag",
			files: map[string]string{"src/Title.tsx": dirtyComponent},
			args:  []string{"-b"},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, cleanComponent, readFile(t, root, "src/Title.tsx"))
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx.bak"))
			},
		},
		{
			name:  "dry_run_prints_diff",
			files: map[string]string{"src/Title.tsx": dirtyComponent},
			args:  []string{"--dry-run"},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx"), "dry run must not write")
				assert.Contains(t, res.stdout, `return <h1>{"Welcome"}</h1>;`)
				assert.Contains(t, res.stdout, "1 files would change")
			},
		},
		{
			name: "include_and_exclude_flags",
			files: map[string]string{
				"app/a.js":      "t('a')\n",
				"app/gen/b.js":  "t('b')\n",
				"src/Title.tsx": dirtyComponent,
			},
			args: []string{"-i", "app/**/*.js", "-e", "gen"},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, "'a'\n", readFile(t, root, "app/a.js"))
				assert.Equal(t, "t('b')\n", readFile(t, root, "app/gen/b.js"))
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx"), "include flag replaces the default list")
			},
		},
		{
			name:  "extra_marker_with_template",
			files: map[string]string{"src/a.ts": "const a = translate(\"Hi\") + t(\"There\");\n"},
			args:  []string{"-r", "translate", "--replacement", "${text}"},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, "const a = Hi + \"There\";\n", readFile(t, root, "src/a.ts"))
			},
		},
		{
			name:  "permissive_mode",
			files: map[string]string{"src/a.ts": "const a = t(key);\n"},
			args:  []string{"-m", "permissive", "-j", "2"},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, "const a = key;\n", readFile(t, root, "src/a.ts"))
			},
		},
		{
			name:  "no_matching_files",
			files: map[string]string{"README.md": "# t(\"x\")\n"},
			validate: func(t *testing.T, root string, res result) {
				assert.Contains(t, res.stdout, "no files match src/**/*.{js,ts,jsx,tsx}")
			},
		},
		{
			name: "config_file_discovered_in_root",
			files: map[string]string{
				"i18n-cleaner.config.yaml": "include:\n  - lib/**/*.js\nreplacePatterns:\n  - pattern: __\n",
				"lib/a.js":                 "__('a'); t('b');\n",
			},
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, "'a'; t('b');\n", readFile(t, root, "lib/a.js"))
				assert.Contains(t, res.stdout, "i18n-cleaner.config.yaml")
			},
		},
		{
			name: "invalid_pattern_aborts_before_any_file",
			files: map[string]string{
				"i18n-cleaner.config.json": `{"removeImports": ["useTranslation("]}`,
				"src/Title.tsx":            dirtyComponent,
			},
			wantCode: 1,
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx"))
				assert.Contains(t, res.stderr, "removeImports")
			},
		},
		{
			name: "invalid_config_file",
			files: map[string]string{
				"i18n-cleaner.config.json": `{"include": "src"}`,
				"src/Title.tsx":            dirtyComponent,
			},
			wantCode: 1,
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx"))
				assert.Contains(t, res.stderr, "i18n-cleaner.config.json")
			},
		},
		{
			name:     "unknown_mode",
			files:    map[string]string{"src/Title.tsx": dirtyComponent},
			args:     []string{"--mode", "loose"},
			wantCode: 1,
			validate: func(t *testing.T, root string, res result) {
				assert.Equal(t, dirtyComponent, readFile(t, root, "src/Title.tsx"))
				assert.Contains(t, res.stderr, "loose")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeProject(t, tt.files)

			res := runCLI(t, append([]string{"--root", root}, tt.args...)...)
			assert.Equal(t, tt.wantCode, res.code, "stdout: %s\nstderr: %s", res.stdout, res.stderr)
			tt.validate(t, root, res)
		})
	}
}

func TestRun_FileFailureExitsNonZero(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := writeProject(t, map[string]string{
		"src/a.ts": "t('a')\n",
		"src/b.ts": "t('b')\n",
	})
	require.NoError(t, os.Chmod(filepath.Join(root, "src/a.ts"), 0000))
	t.Cleanup(func() {
		_ = os.Chmod(filepath.Join(root, "src/a.ts"), 0644)
	})

	res := runCLI(t, "--root", root)
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "'b'\n", readFile(t, root, "src/b.ts"), "other files are still processed")
	assert.Contains(t, res.stderr, "some files failed")
	assert.Contains(t, res.stdout, "src/a.ts: ", "failed files are listed after the summary")
	assert.Contains(t, res.stdout, "permission denied")
}

func TestRun_Check(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
	}{
		{name: "dirty_project", content: dirtyComponent, wantCode: 1},
		{name: "clean_project", content: cleanComponent, wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeProject(t, map[string]string{"src/Title.tsx": tt.content})

			res := runCLI(t, "check", "--root", root)
			assert.Equal(t, tt.wantCode, res.code, "stdout: %s\nstderr: %s", res.stdout, res.stderr)
			assert.Equal(t, tt.content, readFile(t, root, "src/Title.tsx"), "check never writes")
			if tt.wantCode != 0 {
				assert.Contains(t, res.stderr, "would change")
			}
		})
	}
}

func TestRun_Config(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json": `{"name": "app", "i18n-cleaner": {"include": ["web/**/*.ts"], "backup": true}}`,
	})

	res := runCLI(t, "config", "--root", root, "-e", "coverage", "-j", "4")
	require.Equal(t, 0, res.code, "stderr: %s", res.stderr)

	var got struct {
		Include     []string `yaml:"include"`
		Exclude     []string `yaml:"exclude"`
		Backup      bool     `yaml:"backup"`
		Concurrency int      `yaml:"concurrency"`
		Mode        string   `yaml:"argumentMode"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &got))

	assert.Equal(t, []string{"web/**/*.ts"}, got.Include)
	assert.Equal(t, []string{"node_modules", "dist", "coverage"}, got.Exclude, "exclude flags are appended")
	assert.True(t, got.Backup)
	assert.Equal(t, 4, got.Concurrency)
	assert.Equal(t, "strict", got.Mode)
}

func TestRun_Version(t *testing.T) {
	res := runCLI(t, "version")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "i18n-cleaner version info")
	assert.Contains(t, res.stdout, "Go:")
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := setupLogging(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = setupLogging(&buf, true)
	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
