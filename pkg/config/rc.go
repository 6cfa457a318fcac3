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
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// RCName is the extensionless rc file searched for last
const RCName = ".i18n-cleanerrc"

// 🔧 RCParser reads an extensionless rc file, trying YAML first and then HCL
type RCParser struct{}

func init() {
	Register(&RCParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *RCParser) CanParse(filename string) bool {
	return filepath.Base(filename) == RCName
}

// 📝 Parse parses the rc file as YAML or, failing that, HCL
func (p *RCParser) Parse(ctx context.Context, data []byte) (*File, error) {
	file, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return file, nil
	}

	file, hclErr := (&HCLParser{}).Parse(ctx, data)
	if hclErr == nil {
		return file, nil
	}

	return nil, errors.Errorf("failed to parse %s as YAML (%v) or HCL: %w", RCName, yamlErr, hclErr)
}
