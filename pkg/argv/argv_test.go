// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package argv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const helperEnv = "U8TEXT_ARGV_HELPER"

func TestFromArgv(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{name: "nil", argv: nil},
		{name: "program only", argv: []string{"prog"}},
		{name: "utf-8 arguments", argv: []string{"prog", "héllo", "--flag=日本語"}},
		{name: "bytes are not validated", argv: []string{"prog", "\xff\xfe", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromArgv(tt.argv)
			require.NotNil(t, got)
			require.Len(t, got, len(tt.argv))
			for i := range tt.argv {
				assert.Equal(t, tt.argv[i], got[i])
			}
		})
	}
}

func TestFromArgvCopies(t *testing.T) {
	in := []string{"prog", "a"}
	got := FromArgv(in)
	in[1] = "changed"
	assert.Equal(t, "a", got[1])
}

func TestCommandLine(t *testing.T) {
	args := CommandLine()
	require.NotEmpty(t, args)
	if !NativeWideArgv {
		assert.Equal(t, os.Args, args)
	}
}

func TestCommandLineFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	orig := source
	source = func() ([]string, error) { return nil, errors.New("no command line") }
	t.Cleanup(func() { source = orig })

	args := CommandLine()
	require.NotNil(t, args)
	assert.Empty(t, args)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "failed to parse command line")
}

func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	require.NotNil(t, l)
	assert.Same(t, l, Logger())
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

// TestHelperProcess is run as a child by TestCommandLineEndToEnd. It prints
// the program path followed by the arguments after "--" as JSON.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	args := CommandLine()
	out := []string{args[0]}
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i+1:]...)
			break
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Stdout.Write(data)
	os.Exit(0)
}

func TestCommandLineEndToEnd(t *testing.T) {
	want := []string{"héllo", "--flag=日本語"}

	got := runHelper(t, want...)
	require.Len(t, got, 3)
	for i, w := range want {
		assert.Equal(t, utf16.Encode([]rune(w)), utf16.Encode([]rune(got[i+1])))
	}
}

// runHelper runs TestHelperProcess in a child process with args and returns
// the program path plus the arguments it decoded.
func runHelper(t *testing.T, args ...string) []string {
	t.Helper()
	cmd := exec.Command(os.Args[0], append([]string{"-test.run=^TestHelperProcess$", "--"}, args...)...)
	cmd.Env = append(os.Environ(), helperEnv+"=1")
	out, err := cmd.Output()
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal(out, &got))
	return got
}
