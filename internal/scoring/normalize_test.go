package scoring

import (
	"math"
	"testing"
)

func TestMaxRelative(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		max  float64
		want float64
	}{
		{name: "max_member_hits_100", raw: 100, max: 100, want: 100},
		{name: "half_of_max", raw: 50, max: 100, want: 50},
		{name: "zero_raw", raw: 0, max: 100, want: 0},
		{name: "all_zero_cohort", raw: 0, max: 0, want: 0},
		{name: "positive_raw_zero_max", raw: 5, max: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaxRelative(tc.raw, tc.max)
			if got != tc.want {
				t.Fatalf("MaxRelative(%v, %v)=%v, want %v", tc.raw, tc.max, got, tc.want)
			}
		})
	}
}

func TestVelocityRawNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		recent   float64
		previous float64
	}{
		{name: "no_activity_at_all", recent: 0, previous: 0},
		{name: "declining", recent: 2, previous: 100},
		{name: "growing", recent: 100, previous: 2},
		{name: "zero_previous", recent: 50, previous: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := VelocityRaw(tc.recent, tc.previous, DefaultSmoothing)
			if got < 0 || math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("VelocityRaw(%v, %v)=%v, want finite >= 0", tc.recent, tc.previous, got)
			}
		})
	}
}

func TestVelocityRawSmoothing(t *testing.T) {
	// (50+5)/(0+5) - 1 = 10
	got := VelocityRaw(50, 0, 5)
	if math.Abs(got-10) > 1e-9 {
		t.Fatalf("VelocityRaw(50, 0, 5)=%v, want 10", got)
	}
	// Flat activity has zero velocity.
	if got := VelocityRaw(20, 20, 5); got != 0 {
		t.Fatalf("VelocityRaw(20, 20, 5)=%v, want 0", got)
	}
}

func TestFreshnessDecay(t *testing.T) {
	if got := Freshness(0, 365); got != 100 {
		t.Fatalf("Freshness(0)=%v, want 100", got)
	}
	prev := 100.0
	for _, age := range []float64{1, 30, 180, 365, 1000, 10000} {
		f := Freshness(age, 365)
		if f < 0 || f > 100 {
			t.Fatalf("Freshness(%v)=%v out of [0,100]", age, f)
		}
		if f > prev {
			t.Fatalf("Freshness not monotonically non-increasing: f(%v)=%v > %v", age, f, prev)
		}
		prev = f
	}
	if far := Freshness(100000, 365); far > 0.001 {
		t.Fatalf("Freshness(100000)=%v, want ~0", far)
	}
}

func TestNormalizeByCohort(t *testing.T) {
	values := []CohortValue{
		{Cohort: "smartphone", Raw: 100},
		{Cohort: "smartphone", Raw: 50},
		{Cohort: "tv", Raw: 10},
		{Cohort: "tv", Raw: 0},
		{Cohort: "laptop", Raw: 0},
	}
	got := NormalizeByCohort(values)
	want := []float64{100, 50, 100, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeByCohort[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeByCohortAllZero(t *testing.T) {
	values := []CohortValue{
		{Cohort: "smartphone", Raw: 0},
		{Cohort: "smartphone", Raw: 0},
	}
	for i, v := range NormalizeByCohort(values) {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("all-zero cohort normalized[%d]=%v, want 0", i, v)
		}
	}
}
