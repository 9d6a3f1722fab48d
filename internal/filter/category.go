package filter

import "time"

// Category identifies one of the fixed aging buckets, ordered from
// youngest to oldest.
type Category string

const (
	Recent Category = "recent"
	Hours  Category = "hours"
	Days   Category = "days"
	Weeks  Category = "weeks"
	Months Category = "months"
	Years  Category = "years"
)

// Categories lists all categories from youngest to oldest. Their domains
// are contiguous and cover all non-negative ages.
var Categories = []Category{Recent, Hours, Days, Weeks, Months, Years}

func (c Category) valid() bool {
	switch c {
	case Recent, Hours, Days, Weeks, Months, Years:
		return true
	}
	return false
}

const (
	secondsPerHour = 3600
	secondsPerDay  = 24 * secondsPerHour
	secondsPerWeek = 7 * secondsPerDay
)

// categorize maps an item timestamp to its category and slot, relative
// to the reference time ref. Domains are checked youngest-first:
//
//	recent  age < 1h (future-dated items clamp here)
//	hours   1h <= age < 24h, slot = whole hours
//	days    1d <= age < 7d, slot = whole days
//	weeks   age >= 7d within the reference calendar month, slot = whole weeks
//	months  1..11 whole calendar months back, slot = month difference
//	years   12+ calendar months back, slot = calendar year difference
//
// Hour, day and week slots come from floor division of the age in
// seconds. Month and year slots come from calendar subtraction with day
// and time-of-day truncated, so "one snapshot per calendar month" holds
// across 28/29/30/31-day months.
func categorize(t, ref time.Time) (Category, int) {
	age := ref.Unix() - t.Unix()
	if age < 0 {
		age = 0
	}
	switch {
	case age < secondsPerHour:
		return Recent, 0
	case age < secondsPerDay:
		return Hours, int(age / secondsPerHour)
	case age < secondsPerWeek:
		return Days, int(age / secondsPerDay)
	}
	months := monthsBetween(t, ref)
	switch {
	case months < 1:
		return Weeks, int(age / secondsPerWeek)
	case months < 12:
		return Months, months
	default:
		return Years, yearsBetween(t, ref)
	}
}
