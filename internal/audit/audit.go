// Package audit provides best-practice checks for Maven builds. It supports
// built-in rules, custom policy files, and multiple output formats (table,
// JSON, SARIF).
package audit

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/pomgen/internal/maven"
)

// Severity ranks the impact of a finding.
type Severity int

const (
	// SeverityInfo is purely informational.
	SeverityInfo Severity = iota
	// SeverityLow indicates a minor concern.
	SeverityLow
	// SeverityMedium indicates a moderate concern.
	SeverityMedium
	// SeverityHigh indicates a serious issue.
	SeverityHigh
	// SeverityCritical indicates an immediate risk to the build.
	SeverityCritical
)

// String returns the lowercase label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseSeverity parses a severity string (case-insensitive).
// Returns an error for unrecognised values.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical, nil
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q, valid values: critical, high, medium, low, info", s)
	}
}

// Finding represents a single audit result.
type Finding struct {
	RuleID   string   `json:"ruleId"`
	Severity Severity `json:"severity"`
	// Location is the pom element the finding refers to, e.g.
	// "dependencies/org.example:lib" or "profiles/docker/plugins/g:a".
	Location    string `json:"location"`
	Message     string `json:"message"`
	Remediation string `json:"remediation"`
}

// Check is the interface every audit rule must implement.
type Check interface {
	// ID returns the unique rule identifier (e.g. "POM-001").
	ID() string
	// Run evaluates the build and returns any findings.
	Run(ctx context.Context, build *maven.Build) []Finding
}

// Result aggregates findings from all checks.
type Result struct {
	Findings []Finding      `json:"findings"`
	Summary  map[string]int `json:"summary"`
}

// Passed returns true when no finding meets or exceeds the threshold severity.
func (r *Result) Passed(threshold Severity) bool {
	for _, f := range r.Findings {
		if f.Severity >= threshold {
			return false
		}
	}

	return true
}

// Auditor orchestrates a set of checks against a build.
type Auditor struct {
	checks []Check
}

// New creates an Auditor with the given checks.
func New(checks ...Check) *Auditor {
	return &Auditor{checks: checks}
}

// Run executes every registered check and returns the result. Checks stop
// being scheduled once ctx is done.
func (a *Auditor) Run(ctx context.Context, build *maven.Build) *Result {
	var all []Finding

	for _, chk := range a.checks {
		if ctx.Err() != nil {
			break
		}

		all = append(all, chk.Run(ctx, build)...)
	}

	// Severity descending, then rule ID, then location.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return all[i].Severity > all[j].Severity
		}

		if all[i].RuleID != all[j].RuleID {
			return all[i].RuleID < all[j].RuleID
		}

		return all[i].Location < all[j].Location
	})

	summary := make(map[string]int)
	for _, f := range all {
		summary[f.Severity.String()]++
	}

	return &Result{Findings: all, Summary: summary}
}

// DefaultChecks returns the built-in checks.
func DefaultChecks() []Check {
	return []Check{
		&SnapshotDependencyCheck{},
		&InsecureRepositoryCheck{},
		&UnpinnedPluginCheck{},
		&DynamicVersionCheck{},
		&MissingLicenseCheck{},
		&ActiveByDefaultProfileCheck{},
	}
}
