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

package cmd

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/bgencarelle/vcard-qr/internal/output"
	"github.com/bgencarelle/vcard-qr/internal/pathutil"
	"github.com/bgencarelle/vcard-qr/internal/qr"
	"github.com/bgencarelle/vcard-qr/internal/render"
	"github.com/bgencarelle/vcard-qr/internal/vcard"
)

// generateOptions carries everything one run needs, so the pipeline itself
// never touches flags or stdin.
type generateOptions struct {
	VCFInput  string // raw user input, normalized by pathutil
	LogoInput string // raw user input; blank disables compositing
	Sizes     []int
	LogoScale float64
	OutDir    string
	Verify    bool
	Quiet     bool // suppress per-file lines (JSON mode)
}

// generate runs the whole pipeline: resolve, read once, then render,
// composite, and write one PNG per size, in the declared size order. The
// first error aborts the run; files already written stay in place.
func generate(opts generateOptions) ([]output.Artifact, error) {
	if len(opts.Sizes) == 0 {
		return nil, fmt.Errorf("no output sizes configured")
	}
	if opts.LogoScale <= 0 || opts.LogoScale > 0.5 {
		return nil, fmt.Errorf("logo scale must be in (0, 0.5], got %g", opts.LogoScale)
	}

	vcfPath, err := pathutil.Resolve(opts.VCFInput)
	if err != nil {
		return nil, err
	}
	payload, err := vcard.Read(vcfPath)
	if err != nil {
		return nil, err
	}
	base := vcard.BaseName(vcfPath)

	// Load the logo up front so a bad logo path fails before any file is
	// written. There is deliberately no logo-less fallback.
	var logo image.Image
	if strings.TrimSpace(opts.LogoInput) != "" {
		logoPath, err := pathutil.Resolve(opts.LogoInput)
		if err != nil {
			return nil, err
		}
		logo, err = render.LoadLogo(logoPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := render.DefaultConfig()
	cfg.Sizes = opts.Sizes
	cfg.LogoScale = opts.LogoScale

	var artifacts []output.Artifact
	for _, size := range cfg.Sizes {
		img, err := render.Render(payload, size, cfg)
		if err != nil {
			return artifacts, err
		}
		if logo != nil {
			img = render.EmbedLogo(img, logo, cfg.LogoScale)
		}

		path := filepath.Join(opts.OutDir, render.OutputName(base, size))
		if err := render.WritePNG(img, path); err != nil {
			return artifacts, err
		}

		a := output.Artifact{Path: path, Size: size}
		if opts.Verify {
			got, err := qr.ScanFile(path)
			if err != nil {
				return artifacts, fmt.Errorf("verifying %s: %w", path, err)
			}
			if got != payload {
				return artifacts, fmt.Errorf("verifying %s: decoded text does not match the vCard content", path)
			}
			a.Verified = true
		}

		artifacts = append(artifacts, a)
		if !opts.Quiet {
			output.PrintSaved(a)
		}
	}

	return artifacts, nil
}
