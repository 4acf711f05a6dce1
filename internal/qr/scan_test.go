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

package qr

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	skip2 "github.com/skip2/go-qrcode"
)

const testQRContent = "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nEND:VCARD"

// writeTestQR encodes content into a QR PNG under dir and returns its path.
func writeTestQR(t *testing.T, dir, content string) string {
	t.Helper()
	b, err := skip2.Encode(content, skip2.Highest, 256)
	if err != nil {
		t.Fatalf("encoding test QR: %v", err)
	}
	path := filepath.Join(dir, "test_qr.png")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanFile_ValidQR(t *testing.T) {
	path := writeTestQR(t, t.TempDir(), testQRContent)

	got, err := ScanFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != testQRContent {
		t.Errorf("got %q, want %q", got, testQRContent)
	}
}

func TestScanFile_NoQR(t *testing.T) {
	// A blank white image contains nothing to decode.
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 100, 100))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "no_qr.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ScanFile(path)
	if err == nil {
		t.Fatal("expected error for image without QR code")
	}
	if !strings.Contains(err.Error(), "no QR code found") {
		t.Errorf("expected 'no QR code found' error, got: %v", err)
	}
}

func TestScanFile_InvalidPath(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !strings.Contains(err.Error(), "opening image file") {
		t.Errorf("expected 'opening image file' error, got: %v", err)
	}
}

func TestScanFile_InvalidImage(t *testing.T) {
	// A file that exists but isn't a valid image.
	_, err := ScanFile("scan.go")
	if err == nil {
		t.Fatal("expected error for non-image file")
	}
}

func TestDecodeImage_BlankImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	_, err := DecodeImage(img)
	if err == nil {
		t.Fatal("expected error for blank image")
	}
}
