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
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// moduleScale is the pixel edge of one module in the native raster, before
// resampling to the requested output size.
const moduleScale = 10

// Render encodes payload into a QR symbol at cfg.Level and returns a square
// raster of exactly size×size pixels. The encoder picks the smallest QR
// version that fits the payload; an over-capacity payload fails here with
// no image produced.
func Render(payload string, size int, cfg Config) (image.Image, error) {
	if payload == "" {
		return nil, fmt.Errorf("vCard content is empty, nothing to encode")
	}
	if size <= 0 {
		return nil, fmt.Errorf("target size must be positive, got %d", size)
	}

	code, err := qrcode.New(payload, cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}

	// Bitmap includes the standard 4-module quiet zone on all sides.
	modules := code.Bitmap()
	n := len(modules)

	native := image.NewNRGBA(image.Rect(0, 0, n*moduleScale, n*moduleScale))
	draw.Draw(native, native.Bounds(), image.White, image.Point{}, draw.Src)
	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			r := image.Rect(x*moduleScale, y*moduleScale, (x+1)*moduleScale, (y+1)*moduleScale)
			draw.Draw(native, r, image.Black, image.Point{}, draw.Src)
		}
	}

	return imaging.Resize(native, size, size, imaging.Lanczos), nil
}
