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

func TestFormatFileLine(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "modified",
			info: FileInfo{Path: "src/App.tsx", Status: StatusModified, Replacements: 2},
			want: "    ✓ src/App.tsx                         2 calls      modified",
		},
		{
			name: "pending",
			info: FileInfo{Path: "a.ts", Status: StatusPending, Replacements: 1},
			want: "    ⟳ a.ts                                1 call       pending",
		},
		{
			name: "unchanged",
			info: FileInfo{Path: "b.ts", Status: StatusUnchanged},
			want: "    - b.ts                                0 calls      unchanged",
		},
		{
			name: "failed",
			info: FileInfo{Path: "c.ts", Status: StatusFailed, Error: assert.AnError},
			want: "    ✗ c.ts                                0 calls      failed      " + assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileLine(tt.info))
		})
	}
}
