package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand is a test helper that runs the CLI with the given args and
// captures both stdout and stderr.
func executeCommand(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

const serviceDescriptor = `
project:
  groupId: com.example
  artifactId: orders
  version: 1.0.0
dependencies:
  - groupId: org.springframework.boot
    artifactId: spring-boot-starter-web
  - groupId: org.postgresql
    artifactId: postgresql
    version: 42.7.3
    scope: runtime
conventions:
  enabled: [defaults]
`

// writeTestFile writes content to name inside a fresh temp dir and returns
// the full path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.Code)
}

// ---------------------------------------------------------------------------
// Help output
// ---------------------------------------------------------------------------

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	require.NoError(t, err)

	for _, sub := range []string{
		"generate", "diff", "validate", "watch", "audit", "docs", "conventions", "version", "completion",
	} {
		assert.Contains(t, stdout, sub, "help should mention %q subcommand", sub)
	}

	for _, flag := range []string{"--config", "--log-level", "--log-format", "--no-color", "--quiet"} {
		assert.Contains(t, stdout, flag, "help should mention %q flag", flag)
	}
}

// ---------------------------------------------------------------------------
// Unknown flags → exit code 2
// ---------------------------------------------------------------------------

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, _, err := executeCommand("--nonexistent")
	require.Error(t, err)
	requireExitCode(t, err, ExitCodeUsage)
}

func TestRootCommand_SilenceErrors(t *testing.T) {
	_, stderr, err := executeCommand("--nonexistent")
	require.Error(t, err)
	assert.Empty(t, stderr, "cobra should not print errors to stderr (SilenceErrors)")
}

// ---------------------------------------------------------------------------
// Configuration errors → exit code 2
// ---------------------------------------------------------------------------

func TestRootCommand_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing config file",
			args:    []string{"--config", "/nonexistent/path.yaml", "conventions"},
			wantErr: "reading config file",
		},
		{
			name:    "invalid log level",
			args:    []string{"--log-level", "trace", "conventions"},
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			args:    []string{"--log-format", "xml", "conventions"},
			wantErr: "invalid log format",
		},
		{
			name:    "unknown convention",
			args:    []string{"generate", "--conventions", "kotlin", "pomgen.yaml"},
			wantErr: "kotlin",
		},
		{
			name:    "invalid indent",
			args:    []string{"generate", "--indent", "wide", "pomgen.yaml"},
			wantErr: "invalid indent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(tt.args...)
			require.Error(t, err)
			requireExitCode(t, err, ExitCodeUsage)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// No subcommand
// ---------------------------------------------------------------------------

func TestRootCommand_NoArgsPrintsHelp(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())
}

// ---------------------------------------------------------------------------
// ExitError
// ---------------------------------------------------------------------------

func TestExitError_ErrorWithMessage(t *testing.T) {
	err := &ExitError{Code: 1, Err: assert.AnError}
	assert.Contains(t, err.Error(), assert.AnError.Error())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestExitError_ErrorWithoutMessage(t *testing.T) {
	err := &ExitError{Code: 42}
	assert.Equal(t, "exit code 42", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestGenerationExitError(t *testing.T) {
	_, _, err := executeCommand("generate", "-o", "-", writeTestFile(t, "pomgen.yaml", "project: {groupId: g}\n"))
	require.Error(t, err)
	requireExitCode(t, err, ExitCodeInvalidDescriptor)

	_, _, err = executeCommand("generate", "-o", "-", "/nonexistent/pomgen.yaml")
	require.Error(t, err)
	requireExitCode(t, err, ExitCodeError)
}
