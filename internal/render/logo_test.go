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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bgencarelle/vcard-qr/internal/qr"
)

// solidLogo returns an opaque single-color square image.
func solidLogo(c color.NRGBA, side int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEmbedLogo_BoundsAndPlacement(t *testing.T) {
	base, err := Render(sampleVCard, 300, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}

	out := EmbedLogo(base, solidLogo(red, 64), 0.20)

	if out.Bounds() != base.Bounds() {
		t.Errorf("bounds changed: got %v, want %v", out.Bounds(), base.Bounds())
	}

	// Center pixel must now be the logo color.
	r, g, b, _ := out.At(150, 150).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("center pixel = (%d,%d,%d), want logo red", r>>8, g>>8, b>>8)
	}

	// A corner (quiet zone) stays white.
	r, g, b, _ = out.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("corner pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestEmbedLogo_BaseUntouched(t *testing.T) {
	base, err := Render(sampleVCard, 300, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	before := base.At(150, 150)

	EmbedLogo(base, solidLogo(color.NRGBA{B: 255, A: 255}, 32), 0.25)

	if got := base.At(150, 150); got != before {
		t.Errorf("base image modified: center was %v, now %v", before, got)
	}
}

func TestEmbedLogo_TransparentRegionsKeepQR(t *testing.T) {
	base, err := Render(sampleVCard, 300, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	transparent := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	out := EmbedLogo(base, transparent, 0.20)

	// A fully transparent logo must leave every sampled pixel alone.
	for _, p := range []image.Point{{150, 150}, {140, 160}, {2, 2}} {
		if out.At(p.X, p.Y) != base.At(p.X, p.Y) {
			t.Errorf("pixel %v changed under fully transparent logo", p)
		}
	}
}

func TestEmbedLogo_StillDecodable(t *testing.T) {
	cfg := DefaultConfig()
	base, err := Render(sampleVCard, 600, cfg)
	if err != nil {
		t.Fatal(err)
	}

	out := EmbedLogo(base, solidLogo(color.NRGBA{R: 20, G: 60, B: 200, A: 255}, 128), cfg.LogoScale)

	got, err := qr.DecodeImage(out)
	if err != nil {
		t.Fatalf("decoding QR with 20%% logo: %v", err)
	}
	if got != sampleVCard {
		t.Errorf("round-trip with logo = %q, want %q", got, sampleVCard)
	}
}

func TestLoadLogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidLogo(color.NRGBA{G: 255, A: 255}, 48)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadLogo(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 48 {
		t.Errorf("logo width = %d, want 48", img.Bounds().Dx())
	}
}

func TestLoadLogo_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")
	_, err := LoadLogo(path)
	if err == nil {
		t.Fatal("expected error for missing logo")
	}
}

func TestLoadLogo_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(path, []byte("this is not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLogo(path)
	if err == nil {
		t.Fatal("expected error for undecodable logo")
	}
}
