// Copyright 2026 Ben Gencarelle
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

// Package pathutil normalizes user-entered file paths.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve turns a raw user-entered path into an absolute, cleaned one.
// It trims surrounding whitespace, strips one matching pair of straight
// quotes (as left by drag-and-drop or copy-paste from a shell), and expands
// a leading "~". It never checks that the path exists.
func Resolve(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	p = unquote(p)
	p = strings.TrimSpace(p)

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", raw, err)
	}
	return abs, nil
}

// unquote strips a single matching pair of double or single quotes wrapping
// the whole string. Mismatched or unbalanced quotes are left alone.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
