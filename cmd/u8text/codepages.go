// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

var codepagesCmd = &cobra.Command{
	Use:   "codepages",
	Short: "List supported code pages",
	Long: `Codepages lists every code page the converter knows, by numeric id and
canonical name. The system code page is marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: runCodepages,
}

func runCodepages(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	conv, err := systemConverter(cfg)
	if err != nil {
		return err
	}

	cps := strcvt.Supported()
	report := make([]types.CodePageInfo, len(cps))
	for i, cp := range cps {
		report[i] = types.CodePageInfo{
			ID:     uint32(cp),
			Name:   strcvt.Name(cp),
			System: cp == conv.System,
		}
	}

	return render(cmd.OutOrStdout(), cfg.Format, report, func(w io.Writer) error {
		for _, info := range report {
			mark := " "
			if info.System {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %5d  %s\n", mark, info.ID, info.Name)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(codepagesCmd)
}
