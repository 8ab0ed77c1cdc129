package domain

import "fmt"

// SlotsPerDay is the number of 30-minute slots between 7:00 and 18:00.
const SlotsPerDay = 22

// SlotLabels holds the "HH:MM-HH:MM" label for every half-hour slot in the
// 7:00-18:00 day horizon.
var SlotLabels = buildSlotLabels()

func buildSlotLabels() [SlotsPerDay]string {
	var labels [SlotsPerDay]string
	idx := 0
	for h := 7; h < 18; h++ {
		labels[idx] = fmt.Sprintf("%02d:00-%02d:30", h, h)
		idx++
		labels[idx] = fmt.Sprintf("%02d:30-%02d:00", h, h+1)
		idx++
	}
	return labels
}

// LatestStart is the last slot at which a meeting of the given duration can
// begin without running past the day horizon.
func LatestStart(durationSlots int) int {
	latest := SlotsPerDay - durationSlots
	if latest < 0 {
		return 0
	}
	return latest
}

// Overlaps reports whether two half-open intervals [start, start+dur)
// intersect.
func Overlaps(startA, durA, startB, durB int) bool {
	return startA < startB+durB && startB < startA+durA
}
