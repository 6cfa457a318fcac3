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

package text

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrEmptyPattern is reported for a replace pattern without a marker name
var ErrEmptyPattern = errors.Base("marker name is empty")

// PatternError reports a pattern that could not be compiled
type PatternError struct {
	Index   int    // position in the configured list
	Pattern string // the offending pattern text
	Err     error  // underlying compile error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %d %q: %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func newPatternError(index int, pattern string, err error) error {
	return errors.WithStack(&PatternError{Index: index, Pattern: pattern, Err: err})
}
