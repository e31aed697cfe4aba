package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insecureDescriptor = `
project:
  groupId: com.example
  artifactId: legacy
  version: 1.0.0
dependencies:
  - groupId: commons-logging
    artifactId: commons-logging
    version: "1.2"
repositories:
  - id: corp
    url: http://repo.corp.example
`

func TestAuditCommand_Table(t *testing.T) {
	desc := writeTestFile(t, "pomgen.yaml", insecureDescriptor)

	stdout, _, err := executeCommand("audit", desc)
	require.NoError(t, err)
	assert.Contains(t, stdout, "POM-002")
	assert.Contains(t, stdout, "repositories/corp")
	assert.Contains(t, stdout, "POM-005")
}

func TestAuditCommand_FailOn(t *testing.T) {
	desc := writeTestFile(t, "pomgen.yaml", insecureDescriptor)

	_, _, err := executeCommand("audit", "--fail-on", "high", desc)
	require.Error(t, err)
	requireExitCode(t, err, ExitCodeAuditFailed)

	_, _, err = executeCommand("audit", "--fail-on", "critical", desc)
	require.NoError(t, err)
}

func TestAuditCommand_Policy(t *testing.T) {
	desc := writeTestFile(t, "pomgen.yaml", insecureDescriptor)
	policy := writeTestFile(t, "policy.yaml", `
rules:
  - id: CUSTOM-001
    severity: critical
    match: {groupId: commons-logging}
    message: commons-logging is banned
`)

	stdout, _, err := executeCommand("audit", "--format", "json", "--policy", policy, desc)
	require.NoError(t, err)

	var got struct {
		Findings []struct {
			RuleID string `json:"ruleId"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.NotEmpty(t, got.Findings)
	assert.Equal(t, "CUSTOM-001", got.Findings[0].RuleID)
}

func TestAuditCommand_UsageErrors(t *testing.T) {
	desc := writeTestFile(t, "pomgen.yaml", insecureDescriptor)

	tests := [][]string{
		{"audit", "--format", "xml", desc},
		{"audit", "--fail-on", "severe", desc},
		{"audit", "--policy", "/nonexistent/policy.yaml", desc},
	}

	for _, args := range tests {
		_, _, err := executeCommand(args...)
		require.Error(t, err, args)
		requireExitCode(t, err, ExitCodeUsage)
	}
}
