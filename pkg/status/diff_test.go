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

package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "no_change",
			before: "a\nb\n",
			after:  "a\nb\n",
			want:   "",
		},
		{
			name:   "removed_and_rewritten",
			before: "import { useTranslation } from 'react-i18next';\nconst a = 1;\nconst b = t(\"x\");\n",
			after:  "const a = 1;\nconst b = \"x\";\n",
			want: "--- app.ts\n+++ app.ts\n" +
				"-   1 import { useTranslation } from 'react-i18next';\n" +
				"-   3 const b = t(\"x\");\n" +
				"+   2 const b = \"x\";\n",
		},
		{
			name:   "percent_signs_are_literal",
			before: "t(\"100%\")\n",
			after:  "\"100%\"\n",
			want:   "--- app.ts\n+++ app.ts\n-   1 t(\"100%\")\n+   1 \"100%\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff("app.ts", tt.before, tt.after))
		})
	}
}
