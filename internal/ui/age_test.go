package ui

import (
	"testing"
	"time"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds", now.Add(-20 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-12 * 24 * time.Hour), "12d ago"},
		{"same year", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "Jan 2"},
		{"older", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "Jan '23"},
		{"future", now.Add(48 * time.Hour), "Jun 17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAge(tt.at)
			if got != tt.want {
				t.Fatalf("formatAge = %q, want %q", got, tt.want)
			}
			if len(got) > ageWidth {
				t.Fatalf("%q exceeds %d cells", got, ageWidth)
			}
		})
	}
}

func TestLastChanged(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := lastChanged(time.Time{}, created); !got.Equal(created) {
		t.Fatalf("expected fallback to created, got %v", got)
	}
	updated := created.Add(time.Hour)
	if got := lastChanged(updated, created); !got.Equal(updated) {
		t.Fatalf("expected updated, got %v", got)
	}
}
