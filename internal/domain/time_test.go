package domain

import "testing"

func TestSlotLabelsCoverFullDay(t *testing.T) {
	if len(SlotLabels) != SlotsPerDay {
		t.Fatalf("expected %d labels, got %d", SlotsPerDay, len(SlotLabels))
	}
	if SlotLabels[0] != "07:00-07:30" {
		t.Fatalf("expected first slot 07:00-07:30, got %s", SlotLabels[0])
	}
	if SlotLabels[SlotsPerDay-1] != "17:30-18:00" {
		t.Fatalf("expected last slot 17:30-18:00, got %s", SlotLabels[SlotsPerDay-1])
	}
}

func TestLatestStart(t *testing.T) {
	if got := LatestStart(4); got != SlotsPerDay-4 {
		t.Fatalf("expected %d, got %d", SlotsPerDay-4, got)
	}
	if got := LatestStart(SlotsPerDay + 1); got != 0 {
		t.Fatalf("duration longer than the day should clamp to 0, got %d", got)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aDur, bStart, bDur int
		want                       bool
	}{
		{"disjoint before", 0, 2, 2, 2, false},
		{"disjoint after", 4, 2, 0, 2, false},
		{"partial overlap", 0, 3, 2, 3, true},
		{"identical", 0, 2, 0, 2, true},
		{"nested", 0, 4, 1, 2, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.aStart, c.aDur, c.bStart, c.bDur); got != c.want {
				t.Fatalf("Overlaps(%d,%d,%d,%d) = %v, want %v", c.aStart, c.aDur, c.bStart, c.bDur, got, c.want)
			}
		})
	}
}
