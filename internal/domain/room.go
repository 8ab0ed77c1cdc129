package domain

import "strings"

// Room is a catalog entry for a schedulable physical space.
type Room struct {
	ID           string
	Name         string
	IsLaboratory bool
}

// IsCiscoLab reports whether the room name marks it as the networking lab.
func (r Room) IsCiscoLab() bool {
	return strings.Contains(strings.ToLower(r.Name), "cisco")
}

// IsGymnasium reports whether the room name marks it as the gymnasium.
func (r Room) IsGymnasium() bool {
	return strings.Contains(strings.ToLower(r.Name), "gymnasium")
}
