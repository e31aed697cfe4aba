package watch

import (
	"fmt"
	"sort"
	"strings"
)

// DependencyChange describes a single change to the declared dependencies
// between two consecutive generations.
type DependencyChange struct {
	// Kind is one of "added", "removed", or "version-changed".
	Kind string
	// ID is groupId:artifactId.
	ID string
	// Detail holds the version, or "old -> new" for a version change.
	Detail string
}

// DependencyDiff compares two dependency sets keyed by groupId:artifactId
// with the declared version as value. Changes are sorted by ID.
func DependencyDiff(prev, curr map[string]string) []DependencyChange {
	var changes []DependencyChange

	for id, v := range prev {
		if _, ok := curr[id]; !ok {
			changes = append(changes, DependencyChange{Kind: "removed", ID: id, Detail: v})
		}
	}

	for id, cv := range curr {
		pv, existed := prev[id]
		if !existed {
			changes = append(changes, DependencyChange{Kind: "added", ID: id, Detail: cv})
			continue
		}

		if pv != cv {
			changes = append(changes, DependencyChange{
				Kind:   "version-changed",
				ID:     id,
				Detail: fmt.Sprintf("%s -> %s", displayVersion(pv), displayVersion(cv)),
			})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].ID != changes[j].ID {
			return changes[i].ID < changes[j].ID
		}

		return changes[i].Kind < changes[j].Kind
	})

	return changes
}

func displayVersion(v string) string {
	if v == "" {
		return "managed"
	}

	return v
}

// DependencyDiffSummary returns a human-readable one-line summary.
func DependencyDiffSummary(changes []DependencyChange) string {
	var added, removed, changed int

	for _, c := range changes {
		switch c.Kind {
		case "added":
			added++
		case "removed":
			removed++
		case "version-changed":
			changed++
		}
	}

	if added+removed+changed == 0 {
		return "no dependency changes"
	}

	var parts []string

	if added > 0 {
		parts = append(parts, fmt.Sprintf("+%d dependency(ies) added", added))
	}

	if removed > 0 {
		parts = append(parts, fmt.Sprintf("-%d dependency(ies) removed", removed))
	}

	if changed > 0 {
		parts = append(parts, fmt.Sprintf("~%d version(s) changed", changed))
	}

	return strings.Join(parts, ", ")
}
