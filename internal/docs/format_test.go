package docs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, format string, model *DocModel) string {
	t.Helper()

	f, err := NewFormatter(format)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, model))

	return buf.String()
}

func TestNewFormatter_Unsupported(t *testing.T) {
	_, err := NewFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported docs format")
}

func TestMarkdownFormatter(t *testing.T) {
	model := FromBuild(testBuild())
	model.IncludeUsage = true

	out := render(t, "markdown", model)

	assert.Contains(t, out, "# Orders Service\n")
	assert.Contains(t, out, "**Coordinates:** `com.example:orders:1.0.0`")
	assert.Contains(t, out, "## Bills of Materials")
	assert.Contains(t, out, "## Dependencies")
	assert.Contains(t, out, "`org.postgresql:postgresql`")
	assert.Contains(t, out, "## Plugins")
	assert.Contains(t, out, "verify: integration-test, verify")
	assert.Contains(t, out, "## Profiles")
	assert.Contains(t, out, "## Properties")
	assert.Contains(t, out, "```xml\n<dependency>")
}

func TestMarkdownFormatter_OmitsEmptySections(t *testing.T) {
	out := render(t, "md", &DocModel{GroupID: "g", ArtifactID: "a", Version: "1", Packaging: "jar"})

	assert.Contains(t, out, "# a\n")
	assert.NotContains(t, out, "## Dependencies")
	assert.NotContains(t, out, "## Usage")
}

func TestHTMLFormatter(t *testing.T) {
	model := FromBuild(testBuild())
	model.Description = "<b>bold</b>"
	model.IncludeUsage = true

	out := render(t, "html", model)

	assert.Contains(t, out, "<title>Orders Service</title>")
	assert.Contains(t, out, "<h2>Dependencies</h2>")
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt;")
	assert.Contains(t, out, "&lt;dependency&gt;")
	assert.Empty(t, model.Title, "formatting must not modify the model")
}

func TestAsciiDocFormatter(t *testing.T) {
	model := FromBuild(testBuild())
	model.IncludeUsage = true

	out := render(t, "adoc", model)

	assert.Contains(t, out, "= Orders Service\n")
	assert.Contains(t, out, "== Dependencies")
	assert.Contains(t, out, "| Artifact | Version | Scope | Optional")
	assert.Contains(t, out, "| `org.postgresql:postgresql`")
	assert.Contains(t, out, "[source,xml]")
}
