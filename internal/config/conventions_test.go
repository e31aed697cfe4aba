package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pomgen/internal/conventions"
)

func TestParseConventionsConfig(t *testing.T) {
	data := []byte(`
log-level: debug
javaVersion: "21"
encoding: ISO-8859-1
parentRules:
  - versionRange: ">=3.0.0 <3.3.0"
    groupId: com.example.platform
    artifactId: platform-parent
    version: "7.1.0"
    includeBom: true
  - versionRange: ">=3.3.0"
    groupId: com.example.platform
    artifactId: platform-parent-next
`)

	cfg, err := ParseConventionsConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "21", cfg.JavaVersion)
	assert.Equal(t, "ISO-8859-1", cfg.Encoding)
	require.Len(t, cfg.ParentRules, 2)
	assert.True(t, cfg.ParentRules[0].IncludeBom)
	assert.Empty(t, cfg.ParentRules[1].Version)
	assert.False(t, cfg.IsEmpty())

	assert.Equal(t, []conventions.ParentRule{
		{VersionRange: ">=3.0.0 <3.3.0", GroupID: "com.example.platform", ArtifactID: "platform-parent", Version: "7.1.0", IncludeBom: true},
		{VersionRange: ">=3.3.0", GroupID: "com.example.platform", ArtifactID: "platform-parent-next"},
	}, cfg.Rules())
}

func TestParseConventionsConfig_Empty(t *testing.T) {
	cfg, err := ParseConventionsConfig([]byte("log-level: info\n"))
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
	assert.Nil(t, cfg.Rules())
}

func TestParseConventionsConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			data:    "parentRules: [",
			wantErr: "parsing conventions config",
		},
		{
			name: "bad range",
			data: `
parentRules:
  - versionRange: "not a range"
    groupId: g
    artifactId: a
`,
			wantErr: "invalid version range",
		},
		{
			name: "missing artifact",
			data: `
parentRules:
  - versionRange: ">=3.0.0"
    groupId: g
`,
			wantErr: "groupId and artifactId are required",
		},
		{
			name:    "bad java version",
			data:    "javaVersion: seventeen\n",
			wantErr: "javaVersion",
		},
		{
			name:    "bad encoding",
			data:    "encoding: \"utf 8\"\n",
			wantErr: "encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConventionsConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConventionsConfig(t *testing.T) {
	cfg, err := LoadConventionsConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())

	p := writeTempConfig(t, "javaVersion: \"1.8\"\n")

	cfg, err = LoadConventionsConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "1.8", cfg.JavaVersion)

	_, err = LoadConventionsConfig("/nonexistent/pomgen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading conventions config")
}
