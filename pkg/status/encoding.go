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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// 🔤 LookupEncoding resolves a WHATWG encoding label such as "gbk" or
// "shift_jis". UTF-8 resolves to nil, meaning bytes pass through untouched.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Errorf("unknown encoding %q: %w", name, err)
	}

	canonical, err := htmlindex.Name(enc)
	if err == nil && canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

func decode(enc encoding.Encoding, raw []byte) (string, error) {
	if enc == nil {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Errorf("decoding: %w", err)
	}
	return string(out), nil
}

func encode(enc encoding.Encoding, content string) ([]byte, error) {
	if enc == nil {
		return []byte(content), nil
	}
	// strict encoder: a rune the charset cannot hold is an error, not a '?'
	out, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, errors.Errorf("encoding: %w", err)
	}
	return out, nil
}
