// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/u8text/pkg/argv"
	"github.com/pdiddy/u8text/pkg/strcvt"
	"github.com/pdiddy/u8text/pkg/types"
)

var cafe1252 = []byte{'c', 'a', 'f', 0xE9}

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so state does not leak
// between executions of the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "u8text dev\n", out)
}

func TestLength(t *testing.T) {
	t.Run("arguments as text", func(t *testing.T) {
		out, err := execute(t, "", "len", "hello", "héllo", "日本語")
		require.NoError(t, err)
		assert.Equal(t, "5\thello\n5\théllo\n3\t日本語\n", out)
	})

	t.Run("stdin as yaml", func(t *testing.T) {
		out, err := execute(t, "--flag=日本語", "len", "--format", "yaml")
		require.NoError(t, err)

		var got []types.TextLength
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, 10, got[0].CodePoints)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "", "len", "--format", "xml", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}

func TestArgs(t *testing.T) {
	out, err := execute(t, "", "args", "--format", "json")
	require.NoError(t, err)

	var got []types.Argument
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want := argv.CommandLine()
	require.Len(t, got, len(want))
	for i, a := range got {
		assert.Equal(t, i, a.Index)
		assert.Equal(t, want[i], a.Value)
		assert.Equal(t, strcvt.U8StringLength(want[i]), a.CodePoints)
	}
}

func TestDescribeArgs(t *testing.T) {
	got := describeArgs([]string{"prog", "héllo", "😀"})
	require.Len(t, got, 3)
	assert.Equal(t, types.Argument{Index: 1, Value: "héllo", Bytes: 6, CodePoints: 5, UTF16Units: 5}, got[1])
	assert.Equal(t, types.Argument{Index: 2, Value: "😀", Bytes: 4, CodePoints: 1, UTF16Units: 2}, got[2])
}

func TestCodepages(t *testing.T) {
	out, err := execute(t, "", "codepages", "--format", "json", "--system-code-page", "shift_jis")
	require.NoError(t, err)

	var got []types.CodePageInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(strcvt.Supported()))

	var system []uint32
	for _, info := range got {
		if info.System {
			system = append(system, info.ID)
		}
	}
	assert.Equal(t, []uint32{932}, system)
}

func TestCodepagesBadSystemCodePage(t *testing.T) {
	_, err := execute(t, "", "codepages", "--system-code-page", "klingon")
	require.Error(t, err)
	assert.ErrorIs(t, err, strcvt.ErrUnknownCodePage)
}

func TestConvert(t *testing.T) {
	t.Run("stdin to stdout", func(t *testing.T) {
		out, err := execute(t, string(cafe1252), "convert", "--from", "windows-1252", "--to", "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "café", out)
	})

	t.Run("acp follows system code page", func(t *testing.T) {
		out, err := execute(t, "café", "convert", "--system-code-page", "1252", "--from", "utf-8", "--to", "acp")
		require.NoError(t, err)
		assert.Equal(t, string(cafe1252), out)
	})

	t.Run("files to out-dir", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "menu.txt")
		require.NoError(t, os.WriteFile(src, cafe1252, 0o644))
		outDir := filepath.Join(dir, "out")

		_, err := execute(t, "", "convert", "--from", "1252", "--to", "utf8", "--out-dir", outDir, src)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outDir, "menu.txt"))
		require.NoError(t, err)
		assert.Equal(t, "café", string(data))
	})

	t.Run("files to stdout", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.txt")
		b := filepath.Join(dir, "b.txt")
		require.NoError(t, os.WriteFile(a, []byte("日本"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("語"), 0o644))

		out, err := execute(t, "", "convert", "--from", "utf-8", "--to", "shift_jis", a, b)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA}, []byte(out))
	})

	t.Run("round trip", func(t *testing.T) {
		narrow, err := execute(t, "中文 text", "convert", "--from", "utf-8", "--to", "gbk")
		require.NoError(t, err)
		back, err := execute(t, narrow, "convert", "--from", "gbk", "--to", "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "中文 text", back)
	})

	t.Run("missing file fails batch", func(t *testing.T) {
		dir := t.TempDir()
		_, err := execute(t, "", "convert", "--from", "1252", "--out-dir", dir, filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed conversion")
	})

	t.Run("unknown code page", func(t *testing.T) {
		_, err := execute(t, "x", "convert", "--from", "klingon")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--from")
	})
}
