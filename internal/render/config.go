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

// Package render turns a text payload into QR code raster images, with
// optional centered logo compositing, and writes them out as PNG files.
package render

import (
	"github.com/skip2/go-qrcode"
)

// Config holds the render tunables. It is passed explicitly into every
// operation; there is no package-level state.
type Config struct {
	// Sizes are the output edge lengths in pixels, rendered in order.
	Sizes []int

	// Level is the QR error-correction level. The default, Highest,
	// tolerates roughly 30% symbol damage, which is what leaves room for
	// a centered logo to cover modules without breaking scans.
	Level qrcode.RecoveryLevel

	// LogoScale is the logo edge length as a fraction of the QR edge.
	// Values much above 0.25 start eating into the recovery margin.
	LogoScale float64
}

// DefaultConfig returns the standard three print/screen sizes with the
// highest recovery level and a 20% logo.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{300, 600, 1000},
		Level:     qrcode.Highest,
		LogoScale: 0.20,
	}
}
