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
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/i18n-cleaner/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// 🔌 Parser is the interface for config file parsers
type Parser interface {
	// 📝 Parse parses one config file layer from bytes
	Parse(ctx context.Context, data []byte) (*File, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the effective, merged configuration of a run
type Config struct {
	Include            []string              `json:"include" yaml:"include"`
	Exclude            []string              `json:"exclude" yaml:"exclude"`
	ReplacePatterns    []text.ReplacePattern `json:"replacePatterns" yaml:"replacePatterns"`
	RemoveImports      []string              `json:"removeImports" yaml:"removeImports"`
	RemoveDeclarations []string              `json:"removeDeclarations" yaml:"removeDeclarations"`
	Backup             bool                  `json:"backup" yaml:"backup"`
	ArgumentMode       string                `json:"argumentMode" yaml:"argumentMode"`
	Encoding           string                `json:"encoding" yaml:"encoding"`
	Concurrency        int                   `json:"concurrency" yaml:"concurrency"`
	DryRun             bool                  `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`

	// Source is the config file the values came from, empty for defaults only
	Source string `json:"-" yaml:"-"`
}

// 📦 File is one parsed config file. A nil field was absent from the file and
// leaves the value beneath it untouched.
type File struct {
	Include            []string              `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`
	Exclude            []string              `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	ReplacePatterns    []FilePattern         `json:"replacePatterns,omitempty" yaml:"replacePatterns,omitempty" toml:"replacePatterns,omitempty"`
	RemoveImports      []string              `json:"removeImports,omitempty" yaml:"removeImports,omitempty" toml:"removeImports,omitempty"`
	RemoveDeclarations []string              `json:"removeDeclarations,omitempty" yaml:"removeDeclarations,omitempty" toml:"removeDeclarations,omitempty"`
	Backup             *bool                 `json:"backup,omitempty" yaml:"backup,omitempty" toml:"backup,omitempty"`
	ArgumentMode       *string               `json:"argumentMode,omitempty" yaml:"argumentMode,omitempty" toml:"argumentMode,omitempty"`
	Encoding           *string               `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`
	Concurrency        *int                  `json:"concurrency,omitempty" yaml:"concurrency,omitempty" toml:"concurrency,omitempty"`
}

// FilePattern is one replace rule as written in a config file. A nil
// Replacement was absent and selects the default template; an empty one
// deletes the call.
type FilePattern struct {
	Pattern     string  `json:"pattern" yaml:"pattern" toml:"pattern"`
	Replacement *string `json:"replacement,omitempty" yaml:"replacement,omitempty" toml:"replacement,omitempty"`
}

// ReplacePattern returns the rule with the default template filled in
func (p FilePattern) ReplacePattern() text.ReplacePattern {
	replacement := text.DefaultReplacement
	if p.Replacement != nil {
		replacement = *p.Replacement
	}
	return text.ReplacePattern{Pattern: p.Pattern, Replacement: replacement}
}

// 🎯 Load reads and parses a single config file
func Load(ctx context.Context, path string) (*File, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newConfigError(path, err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, newConfigError(path, errors.Errorf("no parser found for file"))
	}

	file, err := p.Parse(ctx, data)
	if err != nil {
		return nil, newConfigError(path, err)
	}

	return file, nil
}

// 🔍 Validate checks the merged configuration
func (cfg *Config) Validate() error {
	if len(cfg.Include) == 0 {
		return newConfigError(cfg.Source, errors.Errorf("include must list at least one pattern"))
	}

	for i, p := range cfg.ReplacePatterns {
		if p.Pattern == "" {
			return newConfigError(cfg.Source, errors.Errorf("replacePatterns[%d].pattern is required", i))
		}
	}

	if _, err := text.ParseArgumentMode(cfg.ArgumentMode); err != nil {
		return newConfigError(cfg.Source, err)
	}

	if _, err := htmlindex.Get(cfg.Encoding); err != nil {
		return newConfigError(cfg.Source, errors.Errorf("unknown encoding %q", cfg.Encoding))
	}

	if cfg.Concurrency < 1 {
		return newConfigError(cfg.Source, errors.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency))
	}

	return nil
}

// Mode returns the parsed argument mode. Call Validate first.
func (cfg *Config) Mode() text.ArgumentMode {
	mode, _ := text.ParseArgumentMode(cfg.ArgumentMode)
	return mode
}

// CleanerOptions converts the config into the options of a text.Cleaner
func (cfg *Config) CleanerOptions() text.CleanerOptions {
	return text.CleanerOptions{
		RemoveImports:      cfg.RemoveImports,
		RemoveDeclarations: cfg.RemoveDeclarations,
		ReplacePatterns:    cfg.ReplacePatterns,
		Mode:               cfg.Mode(),
	}
}

// 📝 String returns a one line summary of the config
func (cfg *Config) String() string {
	names := make([]string, 0, len(cfg.ReplacePatterns))
	for _, p := range cfg.ReplacePatterns {
		names = append(names, p.Pattern)
	}

	source := cfg.Source
	if source == "" {
		source = "defaults"
	}

	return fmt.Sprintf("%s: include=%s exclude=%s markers=%s mode=%s",
		source,
		strings.Join(cfg.Include, ","),
		strings.Join(cfg.Exclude, ","),
		strings.Join(names, ","),
		cfg.Mode())
}
