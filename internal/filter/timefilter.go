package filter

import (
	"sort"
	"time"
)

// Verdict is the classification result for a single item.
type Verdict int

const (
	Rejected Verdict = iota
	Accepted
)

func (v Verdict) String() string {
	if v == Accepted {
		return "accepted"
	}
	return "rejected"
}

// Timestamped is implemented by anything carrying a modification time.
type Timestamped interface {
	ModTime() time.Time
}

// TimeFilter classifies timestamped items against a rule set, relative
// to a fixed reference time. A TimeFilter holds no per-run state and may
// be reused; each Classify call builds its own slot occupancy.
type TimeFilter struct {
	rules RuleSet
	ref   time.Time
}

// New builds a TimeFilter from a validated rule set and a reference
// time. A zero reference time means "now".
func New(rules RuleSet, ref time.Time) (*TimeFilter, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = time.Now()
	}
	return &TimeFilter{rules: rules, ref: ref}, nil
}

// ReferenceTime returns the instant ages are computed against.
func (f *TimeFilter) ReferenceTime() time.Time { return f.ref }

// Classify returns one verdict per timestamp, aligned with the input
// slice. Items are visited most-recent-first regardless of input order,
// so whenever several items contest a (category, slot) pair the most
// recent one is accepted; equal timestamps fall back to input order.
// Classification never fails: every timestamp gets exactly one verdict.
func (f *TimeFilter) Classify(times []time.Time) []Verdict {
	order := make([]int, len(times))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return times[order[a]].After(times[order[b]])
	})

	occ := newOccupancy()
	verdicts := make([]Verdict, len(times))
	for _, i := range order {
		cat, slot := categorize(times[i], f.ref)
		if occ.claim(cat, slot, f.rules[cat]) {
			verdicts[i] = Accepted
		}
	}
	return verdicts
}

// occupancy is the per-invocation accumulator of claimed slots. It is
// created inside Classify and discarded when classification completes.
type occupancy struct {
	slots  map[slotKey]struct{}
	counts map[Category]int
}

type slotKey struct {
	cat  Category
	slot int
}

func newOccupancy() *occupancy {
	return &occupancy{
		slots:  make(map[slotKey]struct{}),
		counts: make(map[Category]int),
	}
}

// claim tries to take the given slot. The first claimant of a slot wins;
// a category stops accepting once it holds max distinct slots. The
// recent bucket is not subdivided, so every claim on it counts against
// max directly.
func (o *occupancy) claim(cat Category, slot, max int) bool {
	if max <= 0 {
		return false
	}
	if cat != Recent {
		if _, taken := o.slots[slotKey{cat, slot}]; taken {
			return false
		}
	}
	if o.counts[cat] >= max {
		return false
	}
	if cat != Recent {
		o.slots[slotKey{cat, slot}] = struct{}{}
	}
	o.counts[cat]++
	return true
}
