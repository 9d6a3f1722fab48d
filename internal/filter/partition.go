package filter

import "time"

// Partition splits items into accepted and rejected slices according to
// verdicts, preserving the relative input order in both outputs. Every
// item lands in exactly one of the two.
func Partition[T any](items []T, verdicts []Verdict) (accepted, rejected []T) {
	for i, it := range items {
		if verdicts[i] == Accepted {
			accepted = append(accepted, it)
		} else {
			rejected = append(rejected, it)
		}
	}
	return accepted, rejected
}

// Filter classifies items and partitions them in one step.
func Filter[T Timestamped](f *TimeFilter, items []T) (accepted, rejected []T) {
	times := make([]time.Time, len(items))
	for i, it := range items {
		times[i] = it.ModTime()
	}
	return Partition(items, f.Classify(times))
}
