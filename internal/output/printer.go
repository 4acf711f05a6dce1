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

// Package output prints run results to the terminal, colored or as JSON.
package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

// Options controls output formatting.
type Options struct {
	JSON    bool
	NoColor bool
}

// Artifact describes one written output file.
type Artifact struct {
	Path     string `json:"path"`
	Size     int    `json:"size"`
	Verified bool   `json:"verified,omitempty"`
}

// PrintSaved prints the confirmation line for one written file.
func PrintSaved(a Artifact) {
	if a.Verified {
		successColor.Printf("✓ Saved %s (verified)\n", a.Path)
		return
	}
	successColor.Printf("✓ Saved %s\n", a.Path)
}

// PrintRunSummary closes out a successful run. In JSON mode it emits the
// machine-readable artifact list instead of the per-file lines.
func PrintRunSummary(artifacts []Artifact, opts Options) {
	if opts.JSON {
		PrintJSON(map[string]any{"outputs": artifacts})
		return
	}
	dimColor.Println("Done. Test scannability on a phone before distributing.")
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorColor.Sprint("Error:"), msg)
}
