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
	"context"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 CollectFiles expands the include patterns under root and drops excluded
// files. Paths are slash separated and relative to root, listed in the order
// first found, each at most once.
//
// An exclude pattern removes a file when it matches the file path or any of
// its ancestor directories; a pattern without a slash also matches any single
// path segment, so "node_modules" excludes every node_modules tree.
func CollectFiles(ctx context.Context, root string, include, exclude []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(root)

	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(normalizePattern(pattern)) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range include {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("collecting files: %w", err)
		}

		normalized := normalizePattern(pattern)
		if !doublestar.ValidatePattern(normalized) {
			return nil, errors.Errorf("invalid include pattern %q", pattern)
		}

		matches, err := doublestar.Glob(fsys, normalized, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding include pattern %q: %w", pattern, err)
		}

		logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded include pattern")

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}

			if excluded(match, exclude) {
				logger.Debug().Str("file", match).Msg("file excluded")
				continue
			}
			files = append(files, match)
		}
	}

	return files, nil
}

// normalizePattern makes a pattern relative to the fs root
func normalizePattern(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	for strings.HasPrefix(pattern, "./") {
		pattern = strings.TrimPrefix(pattern, "./")
	}
	return strings.TrimSuffix(pattern, "/")
}

func excluded(file string, exclude []string) bool {
	for _, raw := range exclude {
		pattern := normalizePattern(raw)
		if pattern == "" {
			continue
		}
		segmentOnly := !strings.Contains(pattern, "/")

		for p := file; p != "." && p != "/" && p != ""; p = path.Dir(p) {
			if doublestar.MatchUnvalidated(pattern, p) {
				return true
			}
			if segmentOnly && doublestar.MatchUnvalidated(pattern, path.Base(p)) {
				return true
			}
		}
	}
	return false
}
