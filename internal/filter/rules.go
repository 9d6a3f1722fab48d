// Package filter implements the time categorization and selection engine:
// it splits timestamped items into accepted and rejected sets, keeping at
// most a configured number of items per time bucket (recent, hours, days,
// weeks, months, years), with buckets widening as item age grows.
package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RuleSet maps each category to its maximum number of retained slots.
// Categories absent from the map have an implicit maxcount of zero,
// which rejects every item falling into that category.
type RuleSet map[Category]int

// RuleError reports a malformed rules string or rule set.
type RuleError struct {
	Token  string
	Reason string
}

func (e *RuleError) Error() string {
	if e.Token == "" {
		return "invalid rules: " + e.Reason
	}
	return fmt.Sprintf("invalid rules: token %q: %s", e.Token, e.Reason)
}

var ruleToken = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)

// ParseRules parses a rules string of the form
// <category><maxcount>[,<category><maxcount>...], e.g. "recent5,days12,months5".
// Each category may appear at most once and maxcount must be a bare
// non-negative integer. Categories not mentioned get maxcount 0.
func ParseRules(s string) (RuleSet, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &RuleError{Reason: "rules string must not be empty"}
	}
	rules := make(RuleSet)
	for _, tok := range strings.Split(s, ",") {
		if tok == "" {
			return nil, &RuleError{Reason: "empty token (stray separator)"}
		}
		m := ruleToken.FindStringSubmatch(tok)
		if m == nil {
			return nil, &RuleError{Token: tok, Reason: "must be <category><maxcount>"}
		}
		cat := Category(m[1])
		if !cat.valid() {
			return nil, &RuleError{Token: tok, Reason: fmt.Sprintf("unknown category %q", m[1])}
		}
		if _, dup := rules[cat]; dup {
			return nil, &RuleError{Token: tok, Reason: fmt.Sprintf("category %q given twice", m[1])}
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &RuleError{Token: tok, Reason: "maxcount out of range"}
		}
		rules[cat] = n
	}
	return rules, nil
}

// Validate checks a programmatically built rule set: only known
// categories, no negative counts.
func (r RuleSet) Validate() error {
	for cat, n := range r {
		if !cat.valid() {
			return &RuleError{Token: string(cat), Reason: "unknown category"}
		}
		if n < 0 {
			return &RuleError{Token: string(cat), Reason: "maxcount must not be negative"}
		}
	}
	return nil
}

// String renders the rule set in the compact input grammar, categories
// in youngest-to-oldest order, zero-count categories omitted.
func (r RuleSet) String() string {
	var parts []string
	for _, cat := range Categories {
		if n, ok := r[cat]; ok && n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", cat, n))
		}
	}
	return strings.Join(parts, ",")
}
