// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

var lengthCmd = &cobra.Command{
	Use:   "len [strings...]",
	Short: "Count UTF-8 code points",
	Long: `Len prints the number of UTF-8 code points in each argument, or in
standard input when no arguments are given. Counting classifies lead bytes
only and stops at the first byte that cannot start a sequence.`,
	RunE: runLength,
}

func runLength(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		args = []string{string(data)}
	}

	report := make([]types.TextLength, len(args))
	for i, a := range args {
		report[i] = types.TextLength{Text: a, CodePoints: strcvt.U8StringLength(a)}
	}

	return render(cmd.OutOrStdout(), cfg.Format, report, func(w io.Writer) error {
		for _, r := range report {
			fmt.Fprintf(w, "%d\t%s\n", r.CodePoints, r.Text)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}
