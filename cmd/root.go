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
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bgencarelle/vcard-qr/internal/output"
)

var (
	logoFlag   string
	logoScale  float64
	sizesFlag  []int
	outDir     string
	verifyFlag bool
	jsonOutput bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "vcard-qr [vcf-file]",
	Short: "Generate scannable QR code PNGs from a vCard (.vcf) file",
	Long: `Encodes the raw content of a vCard (.vcf) file into QR codes and writes
them as PNG files at the standard sizes (300, 600, and 1000 pixels), named
{base}_{size}px.png after the input file. A logo can be composited onto the
center of each code; the highest error-correction level leaves enough
recovery margin for the covered modules.

When no vcf-file argument is given, the tool prompts for the vCard path and
logo path interactively.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&logoFlag, "logo", "", "Logo image to composite onto the center of each QR code")
	rootCmd.Flags().Float64Var(&logoScale, "logo-scale", 0.20, "Logo edge length as a fraction of the QR edge (0 to 0.5)")
	rootCmd.Flags().IntSliceVar(&sizesFlag, "size", []int{300, 600, 1000}, "Output edge length in pixels (repeatable)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory to write the PNG files into")
	rootCmd.Flags().BoolVar(&verifyFlag, "verify", false, "Decode each written file and check it matches the vCard content")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	vcfInput := ""
	logoInput := logoFlag

	if len(args) > 0 {
		vcfInput = args[0]
	} else {
		// Interactive mode: the two classic prompts. A blank logo path
		// disables compositing for the whole run.
		in := bufio.NewReader(cmd.InOrStdin())
		var err error
		vcfInput, err = prompt(in, cmd.ErrOrStderr(), "Path to .vcf file: ")
		if err != nil {
			return err
		}
		if logoInput == "" {
			logoInput, err = prompt(in, cmd.ErrOrStderr(), "Path to logo image (leave blank for none): ")
			if err != nil {
				return err
			}
		}
	}

	opts := generateOptions{
		VCFInput:  vcfInput,
		LogoInput: logoInput,
		Sizes:     sizesFlag,
		LogoScale: logoScale,
		OutDir:    outDir,
		Verify:    verifyFlag,
		Quiet:     jsonOutput,
	}

	artifacts, err := generate(opts)
	if err != nil {
		return err
	}

	output.PrintRunSummary(artifacts, output.Options{JSON: jsonOutput, NoColor: noColor})
	return nil
}

// prompt prints label and reads one line of input.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		return err
	}
	return nil
}
