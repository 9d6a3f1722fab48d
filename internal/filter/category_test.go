package filter

import (
	"testing"
	"time"
)

func TestCategorizeFixedUnits(t *testing.T) {
	ref := time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		cat  Category
		slot int
	}{
		{0, Recent, 0},
		{30 * time.Minute, Recent, 0},
		{time.Hour - time.Second, Recent, 0},
		{time.Hour, Hours, 1},
		{90 * time.Minute, Hours, 1},
		{2 * time.Hour, Hours, 2},
		{24*time.Hour - time.Second, Hours, 23},
		{24 * time.Hour, Days, 1},
		{45 * time.Hour, Days, 1},
		{6*24*time.Hour + 23*time.Hour, Days, 6},
		{7 * 24 * time.Hour, Weeks, 1},
		// 9 days before Jan 10 is Jan 1: same calendar month, still weeks.
		{9 * 24 * time.Hour, Weeks, 1},
	}
	for _, c := range cases {
		cat, slot := categorize(ref.Add(-c.age), ref)
		if cat != c.cat || slot != c.slot {
			t.Errorf("age %v: got (%s, %d), want (%s, %d)", c.age, cat, slot, c.cat, c.slot)
		}
	}
}

func TestCategorizeCalendarUnits(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		ref  time.Time
		cat  Category
		slot int
	}{
		{
			// Ten days back but across the month boundary: Dec 2019 is
			// one calendar month before Jan 2020.
			name: "previous month across year boundary",
			t:    time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			cat:  Months,
			slot: 1,
		},
		{
			name: "leap february",
			t:    time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			cat:  Months,
			slot: 1,
		},
		{
			name: "four weeks inside one long month",
			t:    time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC),
			cat:  Weeks,
			slot: 4,
		},
		{
			name: "eleven calendar months",
			t:    time.Date(2019, 2, 20, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			cat:  Months,
			slot: 11,
		},
		{
			name: "twelve calendar months is years",
			t:    time.Date(2019, 1, 10, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			cat:  Years,
			slot: 1,
		},
		{
			name: "december two calendar years back",
			t:    time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
			cat:  Years,
			slot: 2,
		},
		{
			name: "thirty-day february span",
			t:    time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC),
			ref:  time.Date(2019, 3, 3, 0, 0, 0, 0, time.UTC),
			cat:  Months,
			slot: 1,
		},
	}
	for _, c := range cases {
		cat, slot := categorize(c.t, c.ref)
		if cat != c.cat || slot != c.slot {
			t.Errorf("%s: got (%s, %d), want (%s, %d)", c.name, cat, slot, c.cat, c.slot)
		}
	}
}

func TestCategorizeFutureClampsToRecent(t *testing.T) {
	ref := time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	cat, slot := categorize(ref.Add(48*time.Hour), ref)
	if cat != Recent || slot != 0 {
		t.Errorf("future item: got (%s, %d), want (recent, 0)", cat, slot)
	}
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		t, ref time.Time
		want   int
	}{
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2019, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), 14},
		{time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, c := range cases {
		if got := monthsBetween(c.t, c.ref); got != c.want {
			t.Errorf("monthsBetween(%v, %v) = %d, want %d", c.t, c.ref, got, c.want)
		}
	}
}

func TestMonthsBetweenUsesReferenceLocation(t *testing.T) {
	// 2020-01-01 01:00 +02:00 is 2019-12-31 23:00 UTC, so the month
	// boundary depends on which location the comparison happens in.
	east := time.FixedZone("east", 2*3600)
	ti := time.Date(2020, 1, 1, 1, 0, 0, 0, east)
	ref := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := monthsBetween(ti, ref); got != 1 {
		t.Errorf("monthsBetween across zones = %d, want 1", got)
	}
}

func TestYearsBetween(t *testing.T) {
	ti := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := yearsBetween(ti, ref); got != 3 {
		t.Errorf("yearsBetween = %d, want 3", got)
	}
}
