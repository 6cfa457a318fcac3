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
	"encoding/json"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	// PackageJSONName is the npm manifest that may carry an embedded config
	PackageJSONName = "package.json"

	// PackageJSONKey is the manifest property holding the config
	PackageJSONKey = "i18n-cleaner"
)

// 📦 PackageJSONParser reads the config embedded under the "i18n-cleaner" key
// of a package.json
type PackageJSONParser struct{}

func init() {
	Register(&PackageJSONParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *PackageJSONParser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Base(filename), PackageJSONName)
}

// 📝 Parse extracts and decodes the embedded config. A manifest without the
// key returns ErrNotConfigured.
func (p *PackageJSONParser) Parse(ctx context.Context, data []byte) (*File, error) {
	raw, ok, err := packageConfig(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.WithStack(ErrNotConfigured)
	}

	var file File
	if err := decodeJSON(raw, &file); err != nil {
		return nil, errors.Errorf("parsing %q in package.json: %w", PackageJSONKey, err)
	}
	return &file, nil
}

// packageConfig returns the raw value of the config key, if present
func packageConfig(data []byte) (json.RawMessage, bool, error) {
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, false, errors.Errorf("parsing package.json: %w", err)
	}
	raw, ok := manifest[PackageJSONKey]
	return raw, ok, nil
}
