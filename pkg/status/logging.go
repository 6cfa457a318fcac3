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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	countWidth  = 12 // Width for the rewrite count
	statusWidth = 12 // Width for status text
)

// 🎯 FormatFileLine formats a file outcome as one aligned, colored line
func FormatFileLine(info FileInfo) string {
	// Determine prefix symbol
	var prefix string
	switch info.Status {
	case StatusModified:
		prefix = color.GreenString("✓")
	case StatusPending:
		prefix = color.YellowString("⟳")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, info.Path)
	countPart := fmt.Sprintf("%-*s", countWidth, plural(info.Replacements, "call"))
	statusPart := fmt.Sprintf("%-*s", statusWidth, info.Status.String())

	// Build final string with indentation
	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		countPart,
		statusPart,
	)

	if info.Error != nil {
		line += color.RedString("%v", info.Error)
	}
	return strings.TrimRight(line, " ")
}
