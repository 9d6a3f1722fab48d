package item

import (
	"fmt"
	"regexp"
	"time"
)

// ReferenceLayout is the layout for the --reference-time flag value.
const ReferenceLayout = "20060102-150405"

// ParseReferenceTime parses a reference time given as a local time
// string in ReferenceLayout form, e.g. "20200110-000000".
func ParseReferenceTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ReferenceLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("reference time %q: must match %s: %w", s, ReferenceLayout, err)
	}
	return t, nil
}

// Resolver extracts timestamps from item strings (path basenames or
// whole items) using a Go reference layout. When Regex is set it is
// applied first and its single capture group becomes the string the
// layout is matched against.
type Resolver struct {
	Layout string
	Regex  *regexp.Regexp
}

// NewResolver compiles a resolver. The regex pattern is optional; if
// given it must contain exactly one capture group.
func NewResolver(layout, pattern string) (*Resolver, error) {
	r := &Resolver{Layout: layout}
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("time regex %q: %w", pattern, err)
		}
		if re.NumSubexp() != 1 {
			return nil, fmt.Errorf("time regex %q: need exactly one capture group, got %d", pattern, re.NumSubexp())
		}
		r.Regex = re
	}
	return r, nil
}

// Parse resolves a local timestamp from s.
func (r *Resolver) Parse(s string) (time.Time, error) {
	sub := s
	if r.Regex != nil {
		m := r.Regex.FindStringSubmatch(s)
		if m == nil {
			return time.Time{}, fmt.Errorf("time regex %q did not match %q", r.Regex, s)
		}
		sub = m[1]
	}
	t, err := time.ParseInLocation(r.Layout, sub, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time from %q with layout %q: %w", sub, r.Layout, err)
	}
	return t, nil
}
