// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/u8text/internal/convert"
	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert text between code pages",
	Long: `Convert re-encodes text from one code page to another by way of UTF-16.
With no files it converts standard input to standard output. With files and
--out-dir it writes each converted file under the same name; without
--out-dir the converted files are written to standard output in order.

Code pages accept numeric ids (932), cpNNN, windows-NNN, encoding labels
(shift_jis, gbk, utf-8), or "acp" for the system code page.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cc := convertConfig(cmd)

	conv, err := systemConverter(cfg)
	if err != nil {
		return err
	}
	from, err := resolveCodePage(cc.From, conv)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := resolveCodePage(cc.To, conv)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	if len(args) == 0 {
		return convert.Stream(cmd.InOrStdin(), cmd.OutOrStdout(), from, to)
	}

	if cc.OutDir == "" {
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = convert.Stream(f, cmd.OutOrStdout(), from, to)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	}

	opts := convert.Options{From: from, To: to, OutDir: cc.OutDir, Overwrite: cc.Overwrite}
	result := convert.ConvertBatch(args, opts, cmd.ErrOrStderr())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	outDir, _ := cmd.Flags().GetString("out-dir")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	return types.ConvertConfig{From: from, To: to, OutDir: outDir, Overwrite: overwrite}
}

// resolveCodePage parses name and replaces ACP with the converter's system
// code page.
func resolveCodePage(name string, conv strcvt.Converter) (strcvt.CodePage, error) {
	cp, err := strcvt.ParseCodePage(name)
	if err != nil {
		return strcvt.ACP, err
	}
	if cp == strcvt.ACP {
		return conv.System, nil
	}
	return cp, nil
}

func init() {
	convertCmd.Flags().String("from", "acp", "source code page")
	convertCmd.Flags().String("to", "utf-8", "target code page")
	convertCmd.Flags().String("out-dir", "", "directory for converted files (default: stdout)")
	convertCmd.Flags().Bool("overwrite", false, "replace existing files in --out-dir")

	rootCmd.AddCommand(convertCmd)
}
