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
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔀 Diff renders a line level diff between before and after. Only changed
// lines are shown, each prefixed with its line number in the old or new text.
// It returns "" when nothing changed.
func Diff(path, before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString(color.New(color.Bold).Sprintf("--- %s\n+++ %s\n", path, path))

	oldLine, newLine := 1, 1
	for _, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range chunk {
				sb.WriteString(color.RedString("-%4d %s", oldLine, l))
				sb.WriteByte('\n')
				oldLine++
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range chunk {
				sb.WriteString(color.GreenString("+%4d %s", newLine, l))
				sb.WriteByte('\n')
				newLine++
			}
		default:
			oldLine += len(chunk)
			newLine += len(chunk)
		}
	}

	return sb.String()
}

// splitLines splits a diff chunk made of whole lines; a trailing newline does
// not start another line
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
