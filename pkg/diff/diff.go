// Package diff compares attribute sets produced for two states of an element.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/riceharvest/a11yutils/pkg/aria"
)

// ChangeKind classifies a single attribute change.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change describes how one key differs between two sets.
type Change struct {
	Key    aria.Key
	Kind   ChangeKind
	Before string
	After  string
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s=%q", c.Key, c.After)
	case Removed:
		return fmt.Sprintf("- %s=%q", c.Key, c.Before)
	default:
		return fmt.Sprintf("~ %s: %q -> %q", c.Key, c.Before, c.After)
	}
}

// Attributes lists the changes needed to turn before into after, ordered by key.
// Identical sets produce no changes.
func Attributes(before, after aria.AttributeSet) []Change {
	keys := make(map[aria.Key]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	ordered := make([]aria.Key, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var changes []Change
	for _, k := range ordered {
		b, inBefore := before[k]
		a, inAfter := after[k]
		switch {
		case inBefore && !inAfter:
			changes = append(changes, Change{Key: k, Kind: Removed, Before: valueString(b)})
		case !inBefore && inAfter:
			changes = append(changes, Change{Key: k, Kind: Added, After: valueString(a)})
		case valueString(b) != valueString(a):
			changes = append(changes, Change{Key: k, Kind: Modified, Before: valueString(b), After: valueString(a)})
		}
	}
	return changes
}

// Unified renders a line-oriented unified diff of the two sets, one key="value"
// line per attribute. It returns an empty string when the sets render the same.
func Unified(before, after aria.AttributeSet, beforeLabel, afterLabel string) string {
	beforeText := listing(before)
	afterText := listing(after)
	if beforeText == afterText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(beforeText, afterText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -%s +%s @@\n", hunkRange(len(before)), hunkRange(len(after)))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}

	return buf.String()
}

// hunkRange formats a start,count pair. An empty side starts at line 0.
func hunkRange(count int) string {
	if count == 0 {
		return "0,0"
	}
	return fmt.Sprintf("1,%d", count)
}

func listing(set aria.AttributeSet) string {
	var buf strings.Builder
	for _, attr := range set.Attributes() {
		fmt.Fprintf(&buf, "%s=%q\n", attr.Key, valueString(attr.Value))
	}
	return buf.String()
}

func valueString(v aria.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
