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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrNotConfigured is returned for a package.json without an "i18n-cleaner" key
var ErrNotConfigured = errors.Base("package.json has no \"" + PackageJSONKey + "\" key")

// ⚠️ ConfigError reports a config file that could not be read, parsed or
// validated. It always aborts the run.
type ConfigError struct {
	Path string // empty when the problem is in defaults or flags
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(path string, err error) error {
	return errors.WithStack(&ConfigError{Path: path, Err: err})
}
