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
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// one string literal, double or single quoted, never spanning a line
	strictArgument = `(?:"([^"\n]*)"|'([^'\n]*)')`

	// anything up to the first closing parenthesis on the same line
	permissiveArgument = `([^)\n]*)`
)

// Substituter rewrites marker calls. It is immutable once built and safe for
// concurrent use.
type Substituter struct {
	rules []*compiledRule
}

type compiledRule struct {
	source   ReplacePattern
	re       *regexp.Regexp
	template template
	mode     ArgumentMode
}

// span is a half-open byte range of the buffer written by a rule template
type span struct {
	start, end int
}

// NewSubstituter compiles patterns for the given argument mode. Marker names
// are regex-escaped, so any name compiles; only an empty name is rejected.
func NewSubstituter(patterns []ReplacePattern, mode ArgumentMode) (*Substituter, error) {
	s := &Substituter{}
	for i, p := range patterns {
		rule, err := compileRule(p, mode)
		if err != nil {
			return nil, newPatternError(i, p.Pattern, err)
		}
		s.rules = append(s.rules, rule)
	}
	return s, nil
}

func compileRule(p ReplacePattern, mode ArgumentMode) (*compiledRule, error) {
	if p.Pattern == "" {
		return nil, ErrEmptyPattern
	}

	arg := strictArgument
	if mode == ModePermissive {
		arg = permissiveArgument
	}

	re, err := regexp.Compile(regexp.QuoteMeta(p.Pattern) + `\(` + arg + `\)`)
	if err != nil {
		return nil, err
	}

	return &compiledRule{
		source:   p,
		re:       re,
		template: parseTemplate(p.Replacement),
		mode:     mode,
	}, nil
}

// Substitute is the strict-mode convenience form. Rules with an empty marker
// name are skipped.
func Substitute(content string, patterns []ReplacePattern) string {
	usable := make([]ReplacePattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Pattern != "" {
			usable = append(usable, p)
		}
	}

	s, err := NewSubstituter(usable, ModeStrict)
	if err != nil {
		// unreachable: escaped names always compile
		return content
	}
	return s.Substitute(content).Content
}

// Substitute applies every rule in order. Each rule scans the output of the
// previous ones. A match may wrap text that an earlier rule's template produced
// during this call, but it never starts inside such text or ends partway
// through it.
func (s *Substituter) Substitute(content string) SubstituteResult {
	result := SubstituteResult{Content: content}
	if s == nil {
		return result
	}

	var protected []span
	for _, rule := range s.rules {
		var n int
		result.Content, protected, n = rule.apply(result.Content, protected)
		result.Count += n
	}
	return result
}

func (r *compiledRule) apply(content string, protected []span) (string, []span, int) {
	var (
		b       strings.Builder
		out     []span
		count   int
		copied  int // input consumed into b
		pending = protected
	)

	// flushes protected spans that end before limit into output coordinates
	carry := func(limit int) {
		offset := b.Len() - copied
		for len(pending) > 0 && pending[0].end <= limit {
			out = append(out, span{pending[0].start + offset, pending[0].end + offset})
			pending = pending[1:]
		}
	}

	pos := 0
	for pos < len(content) {
		loc := r.re.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		start, end := loc[0], loc[1]

		quote, text, ok := r.extract(content, loc)
		if !ok || !atTokenStart(content, start) || protectedAt(protected, start) || cuts(protected, end) {
			_, size := utf8.DecodeRuneInString(content[start:])
			pos = start + size
			continue
		}

		carry(start)
		b.WriteString(content[copied:start])

		before := b.Len()
		r.template.render(&b, quote, text)
		if b.Len() > before {
			out = append(out, span{before, b.Len()})
		}

		// earlier output wrapped by this call is consumed with it
		for len(pending) > 0 && pending[0].start < end {
			pending = pending[1:]
		}

		copied = end
		pos = end
		count++
	}

	if count == 0 {
		return content, protected, 0
	}

	carry(len(content))
	b.WriteString(content[copied:])
	return b.String(), out, count
}

// extract returns the quote and text for a match located by loc
func (r *compiledRule) extract(content string, loc []int) (quote, text string, ok bool) {
	if r.mode == ModePermissive {
		arg := strings.TrimSpace(content[loc[2]:loc[3]])
		if arg == "" {
			return "", "", false
		}
		if q, inner, isString := unquoteArgument(arg); isString {
			return q, inner, true
		}
		return "", arg, true
	}

	if loc[2] >= 0 {
		return `"`, content[loc[2]:loc[3]], true
	}
	return `'`, content[loc[4]:loc[5]], true
}

// unquoteArgument reports whether arg is exactly one quoted string literal
func unquoteArgument(arg string) (quote, inner string, ok bool) {
	if len(arg) < 2 {
		return "", "", false
	}
	q := arg[0]
	if (q != '"' && q != '\'') || arg[len(arg)-1] != q {
		return "", "", false
	}
	inner = arg[1 : len(arg)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return "", "", false
	}
	return string(q), inner, true
}

// atTokenStart reports whether the marker name starting at i is not the tail
// of a longer identifier or a member access such as obj.t(...).
func atTokenStart(content string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(content[:i])
	return !isIdentRune(r) && r != '.'
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// protectedAt reports whether byte i lies inside a protected span. spans is sorted.
func protectedAt(spans []span, i int) bool {
	j := sort.Search(len(spans), func(j int) bool { return spans[j].end > i })
	return j < len(spans) && spans[j].start <= i
}

// cuts reports whether a match ending at end would split a protected span
func cuts(spans []span, end int) bool {
	j := sort.Search(len(spans), func(j int) bool { return spans[j].end > end })
	return j < len(spans) && spans[j].start < end
}
