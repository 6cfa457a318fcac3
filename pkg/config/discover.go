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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SearchPlaces lists the config files looked for in a directory, in order
var SearchPlaces = []string{
	PackageJSONName,
	"i18n-cleaner.config.json",
	"i18n-cleaner.config.yaml",
	"i18n-cleaner.config.yml",
	"i18n-cleaner.config.toml",
	"i18n-cleaner.config.hcl",
	RCName,
}

// 🔍 Discover returns the first config file in dir, or "" when there is none.
// A package.json only counts when it carries the "i18n-cleaner" key.
func Discover(ctx context.Context, dir string) (string, error) {
	logger := zerolog.Ctx(ctx)

	for _, name := range SearchPlaces {
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", newConfigError(path, err)
		}
		if info.IsDir() {
			continue
		}

		if name == PackageJSONName {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", newConfigError(path, err)
			}
			_, ok, err := packageConfig(data)
			if err != nil {
				// a broken manifest is not ours to report
				logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable package.json")
				continue
			}
			if !ok {
				continue
			}
		}

		logger.Debug().Str("path", path).Msg("discovered configuration")
		return path, nil
	}

	return "", nil
}
