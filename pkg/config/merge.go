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
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/i18n-cleaner/pkg/text"
)

// 🎛️ Overrides holds values given on the command line. A nil field was not
// given and leaves the config value in place.
type Overrides struct {
	// Include replaces the configured include list
	Include []string

	// Exclude is appended to the configured exclude list
	Exclude []string

	// ReplacePattern appends one rule for this marker name
	ReplacePattern *string

	// Replacement is the template of the ReplacePattern rule; the default
	// template when nil
	Replacement *string

	Backup       *bool
	ArgumentMode *string
	Encoding     *string
	Concurrency  *int
	DryRun       *bool
}

// Options selects the config sources for Resolve
type Options struct {
	// Path is an explicit config file; when empty Dir is searched
	Path string

	// Dir is the directory searched for a config file
	Dir string

	Overrides Overrides
}

// 🎯 Resolve builds the effective config from defaults, the config file and
// the overrides, in that order, and validates the result.
func Resolve(ctx context.Context, opts Options) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	cfg := Default()

	path := opts.Path
	if path == "" {
		found, err := Discover(ctx, opts.Dir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		file, err := Load(ctx, path)
		if err != nil {
			return nil, err
		}
		cfg.ApplyFile(file)
		cfg.Source = path
	} else {
		logger.Debug().Msg("no configuration file found, using defaults")
	}

	cfg.ApplyOverrides(opts.Overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("config", cfg.String()).Msg("resolved configuration")

	return cfg, nil
}

// ApplyFile merges a file layer shallowly: every key present in the file
// replaces the current value.
func (cfg *Config) ApplyFile(file *File) {
	if file == nil {
		return
	}
	if file.Include != nil {
		cfg.Include = slices.Clone(file.Include)
	}
	if file.Exclude != nil {
		cfg.Exclude = slices.Clone(file.Exclude)
	}
	if file.ReplacePatterns != nil {
		cfg.ReplacePatterns = make([]text.ReplacePattern, 0, len(file.ReplacePatterns))
		for _, p := range file.ReplacePatterns {
			cfg.ReplacePatterns = append(cfg.ReplacePatterns, p.ReplacePattern())
		}
	}
	if file.RemoveImports != nil {
		cfg.RemoveImports = slices.Clone(file.RemoveImports)
	}
	if file.RemoveDeclarations != nil {
		cfg.RemoveDeclarations = slices.Clone(file.RemoveDeclarations)
	}
	if file.Backup != nil {
		cfg.Backup = *file.Backup
	}
	if file.ArgumentMode != nil {
		cfg.ArgumentMode = *file.ArgumentMode
	}
	if file.Encoding != nil {
		cfg.Encoding = *file.Encoding
	}
	if file.Concurrency != nil {
		cfg.Concurrency = *file.Concurrency
	}
}

// ApplyOverrides merges command line values. Include replaces, but exclude is
// concatenated so the default exclusions stay in effect.
func (cfg *Config) ApplyOverrides(o Overrides) {
	if len(o.Include) > 0 {
		cfg.Include = slices.Clone(o.Include)
	}
	if len(o.Exclude) > 0 {
		cfg.Exclude = append(slices.Clone(cfg.Exclude), o.Exclude...)
	}
	if o.ReplacePattern != nil {
		replacement := text.DefaultReplacement
		if o.Replacement != nil {
			replacement = *o.Replacement
		}
		cfg.ReplacePatterns = append(slices.Clone(cfg.ReplacePatterns), text.ReplacePattern{
			Pattern:     *o.ReplacePattern,
			Replacement: replacement,
		})
	}
	if o.Backup != nil {
		cfg.Backup = *o.Backup
	}
	if o.ArgumentMode != nil {
		cfg.ArgumentMode = *o.ArgumentMode
	}
	if o.Encoding != nil {
		cfg.Encoding = *o.Encoding
	}
	if o.Concurrency != nil {
		cfg.Concurrency = *o.Concurrency
	}
	if o.DryRun != nil {
		cfg.DryRun = *o.DryRun
	}
}
