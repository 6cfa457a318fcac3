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

package operation

import (
	"sort"

	"github.com/walteh/i18n-cleaner/pkg/status"
)

// 📊 Summary counts the outcome of a run. Total is the number of files
// attempted; a cancelled run attempts fewer than it collected.
type Summary struct {
	Total     int
	Changed   int
	Unchanged int
	Failed    int

	// Files holds every attempted file, sorted by path
	Files []status.FileInfo
}

// HasFailures reports whether any file failed
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// HasChanges reports whether any file was, or in a dry run would be, rewritten
func (s Summary) HasChanges() bool {
	return s.Changed > 0
}

// Failures returns the files that failed
func (s Summary) Failures() []status.FileInfo {
	var out []status.FileInfo
	for _, f := range s.Files {
		if f.Status == status.StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

func (s *Summary) add(info status.FileInfo) {
	s.Total++
	switch info.Status {
	case status.StatusModified, status.StatusPending:
		s.Changed++
	case status.StatusFailed:
		s.Failed++
	default:
		s.Unchanged++
	}
	s.Files = append(s.Files, info)
}

func (s *Summary) sort() {
	sort.Slice(s.Files, func(i, j int) bool {
		return s.Files[i].Path < s.Files[j].Path
	})
}
