package listing

import "strings"

// Location is where an internship happens.
type Location string

// Mode is how an internship is attended.
type Mode string

const (
	OnSite Location = "On-site"
	Remote Location = "Remote"
	Hybrid Location = "Hybrid"

	InPerson   Mode = "In-person"
	RemoteMode Mode = "Remote"
	Flexible   Mode = "Flexible"
)

// InferPlacement derives location and mode from the schedule note and the
// "what you'll do" text. Rules apply in order and the first match wins:
// a visit or on-site work is in person, home or online work is remote,
// anything else is hybrid.
func InferPlacement(scheduleNote, whatDo string) (Location, Mode) {
	schedule := strings.ToLower(scheduleNote)
	do := strings.ToLower(whatDo)

	switch {
	case strings.Contains(schedule, "visit") || strings.Contains(do, "on-site"):
		return OnSite, InPerson
	case strings.Contains(do, "home") || strings.Contains(do, "online"):
		return Remote, RemoteMode
	default:
		return Hybrid, Flexible
	}
}
