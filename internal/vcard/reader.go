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

// Package vcard reads vCard (.vcf) files as opaque text payloads. The
// content is never parsed or validated; a malformed vCard still encodes
// into a perfectly valid QR code.
package vcard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read returns the full UTF-8 text content of the file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading vCard file %s: %w", path, err)
	}
	return string(b), nil
}

// BaseName returns the file name without directory or extension, used to
// derive output file names.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
