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
	"github.com/walteh/i18n-cleaner/pkg/text"
)

const (
	DefaultEncoding    = "utf-8"
	DefaultConcurrency = 1
)

// 🏁 Default returns the built-in configuration for a react-i18next project.
// Every call returns fresh slices.
func Default() *Config {
	return &Config{
		Include: []string{"src/**/*.{js,ts,jsx,tsx}"},
		Exclude: []string{"node_modules", "dist"},
		ReplacePatterns: []text.ReplacePattern{
			{Pattern: "t", Replacement: text.DefaultReplacement},
		},
		RemoveImports: []string{
			`^import \{ useTranslation \} from ['"]react-i18next['"];?$`,
		},
		RemoveDeclarations: []string{
			`^const \{ t \} = useTranslation\(\);?$`,
		},
		Backup:       false,
		ArgumentMode: text.ModeStrict.String(),
		Encoding:     DefaultEncoding,
		Concurrency:  DefaultConcurrency,
	}
}
