package docs

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"
)

// Formatter renders a DocModel to a writer.
type Formatter interface {
	Format(w io.Writer, model *DocModel) error
}

// NewFormatter returns a formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "markdown", "md":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	case "asciidoc", "adoc":
		return &AsciiDocFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported docs format: %s", format)
	}
}

func optionalMark(optional bool) string {
	if optional {
		return "yes"
	}

	return "-"
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// ---------------------------------------------------------------------------
// Markdown
// ---------------------------------------------------------------------------

// MarkdownFormatter renders documentation as Markdown.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, model *DocModel) error {
	fmt.Fprintf(w, "# %s\n\n", model.DefaultTitle())

	if model.Description != "" {
		fmt.Fprintf(w, "%s\n\n", model.Description)
	}

	fmt.Fprintf(w, "**Coordinates:** `%s`  \n", model.Coordinates())
	fmt.Fprintf(w, "**Packaging:** `%s`  \n", model.Packaging)

	if model.Parent != "" {
		fmt.Fprintf(w, "**Parent:** `%s`  \n", model.Parent)
	}

	if len(model.Licenses) > 0 {
		fmt.Fprintf(w, "**Licenses:** %s  \n", strings.Join(model.Licenses, ", "))
	}

	fmt.Fprintln(w)

	if len(model.Boms) > 0 {
		fmt.Fprintf(w, "## Bills of Materials\n\n")
		fmt.Fprintln(w, "| Artifact | Version |")
		fmt.Fprintln(w, "|----------|---------|")

		for _, b := range model.Boms {
			fmt.Fprintf(w, "| `%s` | `%s` |\n", b.Coordinates, b.Version)
		}

		fmt.Fprintln(w)
	}

	if len(model.Dependencies) > 0 {
		fmt.Fprintf(w, "## Dependencies\n\n")

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

		fmt.Fprintln(tw, "| Artifact\t| Version\t| Scope\t| Optional\t|")
		fmt.Fprintln(tw, "|---\t|---\t|---\t|---\t|")

		for _, d := range model.Dependencies {
			fmt.Fprintf(tw, "| `%s`\t| `%s`\t| %s\t| %s\t|\n",
				d.Coordinates, d.Version, d.Scope, optionalMark(d.Optional))
		}

		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(w)
	}

	if len(model.Plugins) > 0 {
		fmt.Fprintf(w, "## Plugins\n\n")
		fmt.Fprintln(w, "| Plugin | Version | Executions |")
		fmt.Fprintln(w, "|--------|---------|------------|")

		for _, p := range model.Plugins {
			fmt.Fprintf(w, "| `%s` | `%s` | %s |\n", p.Coordinates, p.Version, dashIfEmpty(strings.Join(p.Goals, "; ")))
		}

		fmt.Fprintln(w)
	}

	if len(model.Profiles) > 0 {
		fmt.Fprintf(w, "## Profiles\n\n")
		fmt.Fprintln(w, "| ID | Activation | Plugins |")
		fmt.Fprintln(w, "|----|------------|---------|")

		for _, p := range model.Profiles {
			fmt.Fprintf(w, "| `%s` | %s | %s |\n", p.ID, p.Activation, dashIfEmpty(strings.Join(p.Plugins, ", ")))
		}

		fmt.Fprintln(w)
	}

	if len(model.Properties) > 0 {
		fmt.Fprintf(w, "## Properties\n\n")
		fmt.Fprintln(w, "| Name | Value |")
		fmt.Fprintln(w, "|------|-------|")

		for _, p := range model.Properties {
			fmt.Fprintf(w, "| `%s` | `%s` |\n", p.Name, p.Value)
		}

		fmt.Fprintln(w)
	}

	if model.IncludeUsage {
		fmt.Fprintf(w, "## Usage\n\n```xml\n%s```\n", GenerateUsageSnippet(model))
	}

	return nil
}

// ---------------------------------------------------------------------------
// HTML
// ---------------------------------------------------------------------------

// HTMLFormatter renders documentation as a standalone HTML page.
type HTMLFormatter struct{}

var htmlTpl = template.Must(template.New("docs").Funcs(template.FuncMap{
	"join":     strings.Join,
	"optional": optionalMark,
	"dash":     dashIfEmpty,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:sans-serif;margin:2em;line-height:1.6}
table{border-collapse:collapse;width:100%;margin-bottom:1em}
th,td{border:1px solid #ddd;padding:8px;text-align:left}
th{background:#f5f5f5}
code{background:#f0f0f0;padding:2px 4px;border-radius:3px}
pre{background:#f5f5f5;padding:1em;border-radius:4px;overflow-x:auto}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<p><strong>Coordinates:</strong> <code>{{.Coordinates}}</code></p>
<p><strong>Packaging:</strong> <code>{{.Packaging}}</code></p>
{{if .Parent}}<p><strong>Parent:</strong> <code>{{.Parent}}</code></p>{{end}}
{{if .Licenses}}<p><strong>Licenses:</strong> {{join .Licenses ", "}}</p>{{end}}

{{if .Boms}}
<h2>Bills of Materials</h2>
<table>
<tr><th>Artifact</th><th>Version</th></tr>
{{range .Boms}}<tr><td><code>{{.Coordinates}}</code></td><td><code>{{.Version}}</code></td></tr>
{{end}}
</table>
{{end}}

{{if .Dependencies}}
<h2>Dependencies</h2>
<table>
<tr><th>Artifact</th><th>Version</th><th>Scope</th><th>Optional</th></tr>
{{range .Dependencies}}<tr><td><code>{{.Coordinates}}</code></td><td><code>{{.Version}}</code></td><td>{{.Scope}}</td><td>{{optional .Optional}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Plugins}}
<h2>Plugins</h2>
<table>
<tr><th>Plugin</th><th>Version</th><th>Executions</th></tr>
{{range .Plugins}}<tr><td><code>{{.Coordinates}}</code></td><td><code>{{.Version}}</code></td><td>{{dash (join .Goals "; ")}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Profiles}}
<h2>Profiles</h2>
<table>
<tr><th>ID</th><th>Activation</th><th>Plugins</th></tr>
{{range .Profiles}}<tr><td><code>{{.ID}}</code></td><td>{{.Activation}}</td><td>{{dash (join .Plugins ", ")}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Properties}}
<h2>Properties</h2>
<table>
<tr><th>Name</th><th>Value</th></tr>
{{range .Properties}}<tr><td><code>{{.Name}}</code></td><td><code>{{.Value}}</code></td></tr>
{{end}}
</table>
{{end}}

{{if .Usage}}
<h2>Usage</h2>
<pre><code>{{.Usage}}</code></pre>
{{end}}

</body>
</html>
`))

// htmlModel wraps DocModel with precomputed values for the HTML template.
type htmlModel struct {
	*DocModel
	Title string
	Usage string
}

func (f *HTMLFormatter) Format(w io.Writer, model *DocModel) error {
	m := htmlModel{DocModel: model, Title: model.DefaultTitle()}

	if model.IncludeUsage {
		m.Usage = GenerateUsageSnippet(model)
	}

	return htmlTpl.Execute(w, m)
}

// ---------------------------------------------------------------------------
// AsciiDoc
// ---------------------------------------------------------------------------

// AsciiDocFormatter renders documentation as AsciiDoc.
type AsciiDocFormatter struct{}

func (f *AsciiDocFormatter) Format(w io.Writer, model *DocModel) error {
	fmt.Fprintf(w, "= %s\n\n", model.DefaultTitle())

	if model.Description != "" {
		fmt.Fprintf(w, "%s\n\n", model.Description)
	}

	fmt.Fprintf(w, "*Coordinates:* `%s` +\n", model.Coordinates())
	fmt.Fprintf(w, "*Packaging:* `%s` +\n", model.Packaging)

	if model.Parent != "" {
		fmt.Fprintf(w, "*Parent:* `%s` +\n", model.Parent)
	}

	if len(model.Licenses) > 0 {
		fmt.Fprintf(w, "*Licenses:* %s +\n", strings.Join(model.Licenses, ", "))
	}

	fmt.Fprintln(w)

	if len(model.Boms) > 0 {
		writeAsciiDocTable(w, "Bills of Materials", `"2,1"`, []string{"Artifact", "Version"}, len(model.Boms),
			func(i int) []string {
				b := model.Boms[i]
				return []string{"`" + b.Coordinates + "`", "`" + b.Version + "`"}
			})
	}

	if len(model.Dependencies) > 0 {
		writeAsciiDocTable(w, "Dependencies", `"2,1,1,1"`, []string{"Artifact", "Version", "Scope", "Optional"}, len(model.Dependencies),
			func(i int) []string {
				d := model.Dependencies[i]
				return []string{"`" + d.Coordinates + "`", "`" + d.Version + "`", d.Scope, optionalMark(d.Optional)}
			})
	}

	if len(model.Plugins) > 0 {
		writeAsciiDocTable(w, "Plugins", `"2,1,2"`, []string{"Plugin", "Version", "Executions"}, len(model.Plugins),
			func(i int) []string {
				p := model.Plugins[i]
				return []string{"`" + p.Coordinates + "`", "`" + p.Version + "`", dashIfEmpty(strings.Join(p.Goals, "; "))}
			})
	}

	if len(model.Profiles) > 0 {
		writeAsciiDocTable(w, "Profiles", `"1,2,2"`, []string{"ID", "Activation", "Plugins"}, len(model.Profiles),
			func(i int) []string {
				p := model.Profiles[i]
				return []string{"`" + p.ID + "`", p.Activation, dashIfEmpty(strings.Join(p.Plugins, ", "))}
			})
	}

	if len(model.Properties) > 0 {
		writeAsciiDocTable(w, "Properties", `"1,2"`, []string{"Name", "Value"}, len(model.Properties),
			func(i int) []string {
				p := model.Properties[i]
				return []string{"`" + p.Name + "`", "`" + p.Value + "`"}
			})
	}

	if model.IncludeUsage {
		fmt.Fprintf(w, "== Usage\n\n[source,xml]\n----\n%s----\n", GenerateUsageSnippet(model))
	}

	return nil
}

func writeAsciiDocTable(w io.Writer, title, cols string, header []string, rows int, row func(int) []string) {
	fmt.Fprintf(w, "== %s\n\n", title)
	fmt.Fprintf(w, "[cols=%s, options=\"header\"]\n", cols)
	fmt.Fprintln(w, "|===")
	fmt.Fprintf(w, "| %s\n", strings.Join(header, " | "))

	for i := range rows {
		fmt.Fprintln(w)

		for _, cell := range row(i) {
			fmt.Fprintf(w, "| %s\n", cell)
		}
	}

	fmt.Fprintln(w, "|===")
	fmt.Fprintln(w)
}
