// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/u8text/pkg/argv"
	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

var argsCmd = &cobra.Command{
	Use:   "args [words...]",
	Short: "Print the process arguments decoded as UTF-8",
	Long: `Args prints every argument of this process as decoded from the OS
command line, with its UTF-8 byte length, code-point count, and UTF-16
length. Index 0 is the program path.`,
	Args: cobra.ArbitraryArgs,
	RunE: runArgs,
}

func runArgs(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	report := describeArgs(argv.CommandLine())

	return render(cmd.OutOrStdout(), cfg.Format, report, func(w io.Writer) error {
		for _, a := range report {
			fmt.Fprintf(w, "[%d] %q bytes=%d code_points=%d utf16=%d\n",
				a.Index, a.Value, a.Bytes, a.CodePoints, a.UTF16Units)
		}
		return nil
	})
}

func describeArgs(args []string) []types.Argument {
	report := make([]types.Argument, len(args))
	for i, a := range args {
		report[i] = types.Argument{
			Index:      i,
			Value:      a,
			Bytes:      len(a),
			CodePoints: strcvt.U8StringLength(a),
			UTF16Units: len(strcvt.U8StringToWide(a)),
		}
	}
	return report
}

func init() {
	rootCmd.AddCommand(argsCmd)
}
