package output

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// PomNamespace is the default namespace of a Maven 4.0.0 pom.
const PomNamespace = "http://maven.apache.org/POM/4.0.0"

// ValidationSeverity indicates the severity of a validation finding.
type ValidationSeverity int

const (
	// SeverityError means the pom is invalid.
	SeverityError ValidationSeverity = iota
	// SeverityWarning means the pom may be problematic.
	SeverityWarning
)

// String returns the severity name.
func (s ValidationSeverity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// ValidationFinding is a single validation issue.
type ValidationFinding struct {
	Severity ValidationSeverity
	Field    string
	Message  string
}

// Error implements the error interface.
func (f *ValidationFinding) Error() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// ValidationResult holds all findings from a validation run.
type ValidationResult struct {
	Findings []ValidationFinding
}

// Errors returns only error-severity findings.
func (r *ValidationResult) Errors() []ValidationFinding {
	return r.filter(SeverityError)
}

// Warnings returns only warning-severity findings.
func (r *ValidationResult) Warnings() []ValidationFinding {
	return r.filter(SeverityWarning)
}

// HasErrors returns true if any error-severity findings exist.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if any warning-severity findings exist.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

func (r *ValidationResult) filter(s ValidationSeverity) []ValidationFinding {
	var result []ValidationFinding

	for _, f := range r.Findings {
		if f.Severity == s {
			result = append(result, f)
		}
	}

	return result
}

type pomCoordinates struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	pomCoordinates
	Type       string `xml:"type"`
	Classifier string `xml:"classifier"`
	Scope      string `xml:"scope"`
}

type pomPlugin struct {
	pomCoordinates
	Executions []struct {
		ID string `xml:"id"`
	} `xml:"executions>execution"`
}

type pomRepository struct {
	ID  string `xml:"id"`
	URL string `xml:"url"`
}

type pomProject struct {
	XMLName      xml.Name
	ModelVersion string          `xml:"modelVersion"`
	Parent       *pomCoordinates `xml:"parent"`
	pomCoordinates
	Packaging          string          `xml:"packaging"`
	Dependencies       []pomDependency `xml:"dependencies>dependency"`
	Managed            []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
	Plugins            []pomPlugin     `xml:"build>plugins>plugin"`
	Repositories       []pomRepository `xml:"repositories>repository"`
	PluginRepositories []pomRepository `xml:"pluginRepositories>pluginRepository"`
	Profiles           []struct {
		ID      string      `xml:"id"`
		Plugins []pomPlugin `xml:"build>plugins>plugin"`
	} `xml:"profiles>profile"`
}

var validScopes = map[string]bool{
	"": true, "compile": true, "provided": true, "runtime": true, "test": true, "system": true, "import": true,
}

// ValidatePom reads data back as a pom and reports structural problems:
// malformed XML, missing coordinates, duplicate declarations and unknown
// scopes. Dependency versions that nothing manages are reported as
// warnings.
func ValidatePom(data []byte) *ValidationResult {
	v := &validator{}

	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v.project); err != nil {
		v.addError("project", fmt.Sprintf("not a well-formed pom: %v", err))
		return &v.result
	}

	v.validate()

	return &v.result
}

type validator struct {
	project pomProject
	result  ValidationResult
}

func (v *validator) addError(field, msg string) {
	v.result.Findings = append(v.result.Findings, ValidationFinding{
		Severity: SeverityError,
		Field:    field,
		Message:  msg,
	})
}

func (v *validator) addWarning(field, msg string) {
	v.result.Findings = append(v.result.Findings, ValidationFinding{
		Severity: SeverityWarning,
		Field:    field,
		Message:  msg,
	})
}

func (v *validator) validate() {
	v.validateProject()
	v.validateDependencies()
	v.validatePlugins("build.plugins", v.project.Plugins)
	v.validateRepositories("repositories", v.project.Repositories)
	v.validateRepositories("pluginRepositories", v.project.PluginRepositories)
	v.validateProfiles()
}

func (v *validator) validateProject() {
	p := v.project

	if p.XMLName.Local != "project" {
		v.addError("project", fmt.Sprintf("unexpected root element <%s>", p.XMLName.Local))
		return
	}

	if p.XMLName.Space != PomNamespace {
		v.addWarning("project", fmt.Sprintf("unexpected namespace %q (expected %s)", p.XMLName.Space, PomNamespace))
	}

	switch p.ModelVersion {
	case "":
		v.addError("modelVersion", "required field is missing")
	case "4.0.0":
	default:
		v.addError("modelVersion", fmt.Sprintf("unsupported model version %s", p.ModelVersion))
	}

	if p.Parent != nil && (p.Parent.GroupID == "" || p.Parent.ArtifactID == "" || p.Parent.Version == "") {
		v.addError("parent", "groupId, artifactId and version are required")
	}

	if p.ArtifactID == "" {
		v.addError("artifactId", "required field is missing")
	}

	if p.GroupID == "" && p.Parent == nil {
		v.addError("groupId", "required field is missing and no parent to inherit it from")
	}

	if p.Version == "" && p.Parent == nil {
		v.addError("version", "required field is missing and no parent to inherit it from")
	}
}

func (v *validator) validateDependencies() {
	managed := make(map[string]bool, len(v.project.Managed))

	for i, d := range v.project.Managed {
		field := fmt.Sprintf("dependencyManagement.dependencies[%d]", i)
		v.validateDependency(field, d)

		if d.Scope == "import" && d.Type != "pom" {
			v.addError(field+".type", "an import scoped dependency must have type pom")
		}

		managed[d.GroupID+":"+d.ArtifactID] = true
	}

	hasBom := len(v.project.Managed) > 0
	seen := make(map[string]bool, len(v.project.Dependencies))

	for i, d := range v.project.Dependencies {
		field := fmt.Sprintf("dependencies[%d]", i)
		v.validateDependency(field, d)

		if d.Scope == "import" {
			v.addError(field+".scope", "import scope is only valid in dependencyManagement")
		}

		key := d.GroupID + ":" + d.ArtifactID + ":" + d.Type + ":" + d.Classifier
		if seen[key] {
			name := d.GroupID + ":" + d.ArtifactID
			if d.Classifier != "" {
				name += ":" + d.Classifier
			}

			v.addError(field, "duplicate dependency "+name)
		}

		seen[key] = true

		if d.Version == "" && v.project.Parent == nil && !hasBom && !managed[d.GroupID+":"+d.ArtifactID] {
			v.addWarning(field+".version", fmt.Sprintf("%s:%s has no version and no parent or bom manages it", d.GroupID, d.ArtifactID))
		}
	}
}

func (v *validator) validateDependency(field string, d pomDependency) {
	if d.GroupID == "" || d.ArtifactID == "" {
		v.addError(field, "groupId and artifactId are required")
	}

	if !validScopes[d.Scope] {
		v.addError(field+".scope", fmt.Sprintf("unknown scope %q", d.Scope))
	}
}

func (v *validator) validatePlugins(field string, plugins []pomPlugin) {
	seen := make(map[string]bool, len(plugins))

	for i, p := range plugins {
		pf := fmt.Sprintf("%s[%d]", field, i)

		if p.ArtifactID == "" {
			v.addError(pf, "artifactId is required")
			continue
		}

		key := p.GroupID + ":" + p.ArtifactID
		if seen[key] {
			v.addError(pf, "duplicate plugin "+strings.TrimPrefix(key, ":"))
		}

		seen[key] = true

		ids := make(map[string]bool, len(p.Executions))
		for _, e := range p.Executions {
			if ids[e.ID] {
				v.addError(pf+".executions", fmt.Sprintf("duplicate execution id %q", e.ID))
			}

			ids[e.ID] = true
		}
	}
}

func (v *validator) validateRepositories(field string, repos []pomRepository) {
	seen := make(map[string]bool, len(repos))

	for i, r := range repos {
		rf := fmt.Sprintf("%s[%d]", field, i)

		if r.ID == "" || r.URL == "" {
			v.addError(rf, "id and url are required")
		}

		if seen[r.ID] {
			v.addError(rf, fmt.Sprintf("duplicate repository id %q", r.ID))
		}

		seen[r.ID] = true
	}
}

func (v *validator) validateProfiles() {
	seen := make(map[string]bool, len(v.project.Profiles))

	for i, p := range v.project.Profiles {
		field := fmt.Sprintf("profiles[%d]", i)

		if p.ID == "" {
			v.addError(field, "id is required")
		} else if seen[p.ID] {
			v.addError(field, fmt.Sprintf("duplicate profile id %q", p.ID))
		}

		seen[p.ID] = true

		v.validatePlugins(field+".build.plugins", p.Plugins)
	}
}

// FormatValidationResult returns a human-readable string of all findings.
func FormatValidationResult(result *ValidationResult) string {
	if len(result.Findings) == 0 {
		return "Validation passed: no issues found."
	}

	var sb strings.Builder

	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) > 0 {
		_, _ = fmt.Fprintf(&sb, "Errors (%d):\n", len(errs))

		for _, f := range errs {
			_, _ = fmt.Fprintf(&sb, "  - %s: %s\n", f.Field, f.Message)
		}
	}

	if len(warnings) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}

		_, _ = fmt.Fprintf(&sb, "Warnings (%d):\n", len(warnings))

		for _, f := range warnings {
			_, _ = fmt.Fprintf(&sb, "  - %s: %s\n", f.Field, f.Message)
		}
	}

	return sb.String()
}
