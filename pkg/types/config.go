// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how command reports are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// Config holds settings shared by every command. Values come from
// u8text.yaml, U8TEXT_* environment variables, and flags, in increasing
// precedence.
type Config struct {
	// SystemCodePage overrides the detected system code page. Empty means
	// detect from the OS. Accepts ids ("932"), "cpNNN", or encoding labels.
	SystemCodePage string `json:"system_code_page" yaml:"system_code_page"`

	// Format selects report rendering: text, yaml, or json (default text).
	Format OutputFormat `json:"format" yaml:"format"`
}

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	// From is the source code page name (default "acp").
	From string `json:"from" yaml:"from"`

	// To is the target code page name (default "utf-8").
	To string `json:"to" yaml:"to"`

	// OutDir receives converted files. Empty writes to stdout.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Overwrite replaces existing files in OutDir instead of skipping them.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}
