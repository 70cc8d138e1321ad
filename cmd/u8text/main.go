// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the u8text CLI. The command line is
// decoded to UTF-8 by pkg/argv before cobra parses it, so non-ASCII
// arguments arrive intact on every platform.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/u8text/pkg/argv"
	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the u8text CLI.
var rootCmd = &cobra.Command{
	Use:   "u8text",
	Short: "Inspect UTF-8 arguments and convert text between code pages",
	Long: `u8text decodes its own command line to UTF-8 regardless of platform and
converts text between legacy code pages, UTF-16, and UTF-8.

Every conversion passes through UTF-16. Text the target code page cannot
represent is replaced, never reported as an error.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./u8text.yaml or ~/.config/u8text/u8text.yaml)")
	flags.String("system-code-page", "", "system code page override (default: detect)")
	flags.String("format", string(types.FormatText), "report format: text, yaml, or json")

	_ = viper.BindPFlag("system_code_page", flags.Lookup("system-code-page"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("u8text")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "u8text"))
		}
	}

	viper.SetEnvPrefix("U8TEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the shared settings from viper.
func loadConfig() types.Config {
	cfg := types.Config{
		SystemCodePage: viper.GetString("system_code_page"),
		Format:         types.OutputFormat(viper.GetString("format")),
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatText
	}
	return cfg
}

// systemConverter returns a converter bound to the configured system code
// page, or to the detected one when none is configured.
func systemConverter(cfg types.Config) (strcvt.Converter, error) {
	if cfg.SystemCodePage == "" {
		return strcvt.DefaultConverter(), nil
	}
	cp, err := strcvt.ParseCodePage(cfg.SystemCodePage)
	if err != nil {
		return strcvt.Converter{}, fmt.Errorf("system_code_page: %w", err)
	}
	return strcvt.NewConverter(cp), nil
}

// render writes v in the configured format; text uses the command's own
// layout.
func render(w io.Writer, format types.OutputFormat, v any, text func(io.Writer) error) error {
	switch format {
	case types.FormatText:
		return text(w)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q: use text, yaml, or json", format)
	}
}

func main() {
	if args := argv.CommandLine(); len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
