package audit

import (
	"context"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/hupe1980/pomgen/internal/maven"
)

// PolicyFile represents a custom policy YAML file.
type PolicyFile struct {
	Rules []PolicyRule `json:"rules" yaml:"rules"`
}

// PolicyRule defines a single custom audit rule evaluated against every
// dependency.
type PolicyRule struct {
	// ID is the unique rule identifier (e.g., "CUSTOM-001").
	ID string `json:"id" yaml:"id"`

	// Severity is the finding severity (critical, high, medium, low, info).
	SeverityStr string `json:"severity" yaml:"severity"`

	// Match restricts the rule to specific dependencies.
	Match PolicyMatch `json:"match" yaml:"match"`

	// Condition narrows the matched dependencies further.
	// Supported: "banned", "snapshot version", "no version",
	// "literal version", "test scope", "compile scope".
	// An empty condition behaves like "banned".
	Condition string `json:"condition" yaml:"condition"`

	// Message is the finding message.
	Message string `json:"message" yaml:"message"`

	// Remediation suggests how to fix the issue.
	Remediation string `json:"remediation" yaml:"remediation"`
}

// PolicyMatch restricts which dependencies a rule applies to. Both fields
// are shell patterns as understood by path.Match; empty matches everything.
type PolicyMatch struct {
	GroupID    string `json:"groupId" yaml:"groupId"`
	ArtifactID string `json:"artifactId" yaml:"artifactId"`
}

// LoadPolicyFile loads a custom policy file from disk.
func LoadPolicyFile(p string) (*PolicyFile, error) {
	data, err := os.ReadFile(p) //nolint:gosec // path is user-provided CLI arg, not attacker-controlled
	if err != nil {
		return nil, fmt.Errorf("reading policy file %s: %w", p, err)
	}

	pf, err := ParsePolicy(data)
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", p, err)
	}

	return pf, nil
}

// ParsePolicy parses and validates policy YAML.
func ParsePolicy(data []byte) (*PolicyFile, error) {
	var pf PolicyFile
	if err := sigsyaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing policy: %w", err)
	}

	seen := make(map[string]bool, len(pf.Rules))

	for _, r := range pf.Rules {
		if r.ID == "" {
			return nil, fmt.Errorf("rule missing required 'id' field")
		}

		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate rule id %s", r.ID)
		}

		seen[r.ID] = true

		if r.Message == "" {
			return nil, fmt.Errorf("rule %s missing required 'message' field", r.ID)
		}

		if r.SeverityStr != "" {
			if _, err := ParseSeverity(r.SeverityStr); err != nil {
				return nil, fmt.Errorf("rule %s: %w", r.ID, err)
			}
		}

		if r.Condition != "" && !isKnownCondition(r.Condition) {
			return nil, fmt.Errorf("rule %s: unknown condition %q; supported: %s",
				r.ID, r.Condition, strings.Join(knownConditions(), ", "))
		}

		for _, pattern := range []string{r.Match.GroupID, r.Match.ArtifactID} {
			if _, err := path.Match(pattern, ""); err != nil {
				return nil, fmt.Errorf("rule %s: invalid pattern %q: %w", r.ID, pattern, err)
			}
		}
	}

	return &pf, nil
}

// ToChecks converts policy rules into audit checks.
func (pf *PolicyFile) ToChecks() []Check {
	var checks []Check

	for _, rule := range pf.Rules {
		checks = append(checks, &customRuleCheck{rule: rule})
	}

	return checks
}

// customRuleCheck implements Check for a custom policy rule.
type customRuleCheck struct {
	rule PolicyRule
}

func (c *customRuleCheck) ID() string { return c.rule.ID }

func (c *customRuleCheck) Run(_ context.Context, build *maven.Build) []Finding {
	var findings []Finding

	sev, _ := ParseSeverity(c.rule.SeverityStr)

	for d := range build.Dependencies().Items() {
		if !c.matches(d) || !c.matchesCondition(d) {
			continue
		}

		findings = append(findings, Finding{
			RuleID:      c.rule.ID,
			Severity:    sev,
			Location:    dependencyLocation(d),
			Message:     c.rule.Message,
			Remediation: c.rule.Remediation,
		})
	}

	return findings
}

func (c *customRuleCheck) matches(d maven.Dependency) bool {
	return matchPattern(c.rule.Match.GroupID, d.GroupID) &&
		matchPattern(c.rule.Match.ArtifactID, d.ArtifactID)
}

func matchPattern(pattern, value string) bool {
	if pattern == "" {
		return true
	}

	ok, _ := path.Match(pattern, value)

	return ok
}

// matchesCondition evaluates the rule condition against a dependency.
func (c *customRuleCheck) matchesCondition(d maven.Dependency) bool {
	switch strings.ToLower(strings.TrimSpace(c.rule.Condition)) {
	case "", "banned":
		return true
	case "snapshot version":
		return d.Version != nil && strings.HasSuffix(d.Version.Value(), snapshotSuffix)
	case "no version":
		return d.Version == nil
	case "literal version":
		return d.Version != nil && !d.Version.IsProperty()
	case "test scope":
		return d.Scope.IsTest()
	case "compile scope":
		return d.Scope.IsCompile()
	default:
		return false
	}
}

// knownConditions returns the list of supported condition strings.
func knownConditions() []string {
	return []string{
		"banned",
		"snapshot version",
		"no version",
		"literal version",
		"test scope",
		"compile scope",
	}
}

// isKnownCondition reports whether the given condition string is supported.
func isKnownCondition(cond string) bool {
	return slices.Contains(knownConditions(), strings.ToLower(strings.TrimSpace(cond)))
}
