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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Template placeholders substituted per match.
const (
	QuotePlaceholder = "${quote}"
	TextPlaceholder  = "${text}"

	// DefaultReplacement keeps the matched string literal with its original quotes.
	DefaultReplacement = QuotePlaceholder + TextPlaceholder + QuotePlaceholder
)

// ReplacePattern rewrites calls to the marker function Pattern using the Replacement template
type ReplacePattern struct {
	// Pattern is the bare name of the marker function, e.g. "t"
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`

	// Replacement is the template written in place of each call
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement"`
}

// ArgumentMode selects which call arguments a marker call may carry to be rewritten
type ArgumentMode int

const (
	// ModeStrict only matches calls whose single argument is one quoted string literal
	ModeStrict ArgumentMode = iota

	// ModePermissive matches any argument text up to the first closing parenthesis
	ModePermissive
)

// String returns the config name of the mode
func (m ArgumentMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModePermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// ParseArgumentMode parses a config value; the empty string means strict
func ParseArgumentMode(s string) (ArgumentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ModeStrict, nil
	case "permissive":
		return ModePermissive, nil
	default:
		return ModeStrict, errors.Errorf("unknown argument mode %q (want strict or permissive)", s)
	}
}

// SubstituteResult contains the outcome of running the substitution rules over a buffer
type SubstituteResult struct {
	// Content is the rewritten buffer
	Content string

	// Count is the number of call sites rewritten across all rules
	Count int
}

// FilterResult contains the outcome of running the line filter over a buffer
type FilterResult struct {
	// Content is the buffer without the removed lines
	Content string

	// Removed is the number of dropped lines
	Removed int
}

// template is a replacement string split around its placeholders
type template []templatePart

type templatePart struct {
	literal string
	kind    placeholderKind
}

type placeholderKind int

const (
	partLiteral placeholderKind = iota
	partQuote
	partText
)

// parseTemplate splits tmpl at every ${quote} and ${text}. Everything else,
// including other $-sequences, stays literal.
func parseTemplate(tmpl string) template {
	var parts template
	rest := tmpl
	for rest != "" {
		qi := strings.Index(rest, QuotePlaceholder)
		ti := strings.Index(rest, TextPlaceholder)

		next, kind, size := -1, partLiteral, 0
		switch {
		case qi >= 0 && (ti < 0 || qi < ti):
			next, kind, size = qi, partQuote, len(QuotePlaceholder)
		case ti >= 0:
			next, kind, size = ti, partText, len(TextPlaceholder)
		}

		if next < 0 {
			parts = append(parts, templatePart{literal: rest})
			break
		}
		if next > 0 {
			parts = append(parts, templatePart{literal: rest[:next]})
		}
		parts = append(parts, templatePart{kind: kind})
		rest = rest[next+size:]
	}
	return parts
}

// render writes the template with quote and text substituted. The values are
// inserted verbatim and never re-scanned for placeholders.
func (t template) render(b *strings.Builder, quote, text string) {
	for _, p := range t {
		switch p.kind {
		case partQuote:
			b.WriteString(quote)
		case partText:
			b.WriteString(text)
		default:
			b.WriteString(p.literal)
		}
	}
}
