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

	"github.com/spf13/cobra"

	"github.com/bgencarelle/vcard-qr/internal/output"
	"github.com/bgencarelle/vcard-qr/internal/pathutil"
	"github.com/bgencarelle/vcard-qr/internal/qr"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Decode a QR code image and print its text content",
	Long:  "Decodes a QR code from a PNG or JPEG file and prints the embedded text. Useful for checking that a generated code still scans after printing or editing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path, err := pathutil.Resolve(args[0])
	if err != nil {
		return err
	}

	text, err := qr.ScanFile(path)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	if jsonOutput {
		output.PrintJSON(map[string]any{"text": text})
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
