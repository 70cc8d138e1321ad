// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one file.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Argument describes one decoded command-line argument.
type Argument struct {
	Index int    `json:"index" yaml:"index"`
	Value string `json:"value" yaml:"value"`

	// Bytes is the UTF-8 length of Value.
	Bytes int `json:"bytes" yaml:"bytes"`

	// CodePoints is the number of UTF-8 code points in Value.
	CodePoints int `json:"code_points" yaml:"code_points"`

	// UTF16Units is the length of Value re-encoded as UTF-16.
	UTF16Units int `json:"utf16_units" yaml:"utf16_units"`
}

// TextLength pairs a string with its code-point count.
type TextLength struct {
	Text       string `json:"text" yaml:"text"`
	CodePoints int    `json:"code_points" yaml:"code_points"`
}

// CodePageInfo describes a registered code page.
type CodePageInfo struct {
	ID     uint32 `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	System bool   `json:"system,omitempty" yaml:"system,omitempty"`
}
