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

package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// LoadLogo decodes the logo image at path (PNG, JPEG, GIF, TIFF, or BMP).
func LoadLogo(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading logo %s: %w", path, err)
	}
	return img, nil
}

// EmbedLogo composites logo onto the center of base and returns the result
// as a new image; base is left untouched. The logo is resized to a square
// of scale×(base edge) per side. The covered modules are not punched out:
// scannability relies on the QR error-correction margin exceeding the
// obscured area.
func EmbedLogo(base image.Image, logo image.Image, scale float64) image.Image {
	b := base.Bounds()
	side := int(float64(b.Dx()) * scale)
	if side < 1 {
		side = 1
	}

	resized := imaging.Resize(logo, side, side, imaging.Lanczos)
	offset := image.Pt((b.Dx()-side)/2, (b.Dy()-side)/2)

	// Overlay blends with the logo's alpha channel, so transparent logo
	// regions keep the QR modules underneath.
	return imaging.Overlay(base, resized, offset, 1.0)
}
