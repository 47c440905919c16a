package model

import "time"

// civil drops the clock and zone so stay dates compare by calendar day.
func civil(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the half-open stays [aStart, aEnd) and [bStart, bEnd) share a night.
// A stay ending on the day another begins does not overlap it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return civil(aStart).Before(civil(bEnd)) && civil(bStart).Before(civil(aEnd))
}

// Active reports whether the booking still holds its room.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled
}

// FindConflict returns the first active booking of the candidate's room that overlaps it.
// The candidate itself is skipped, so a stored booking can be checked against its neighbours.
func FindConflict(candidate Booking, existing []Booking) (Booking, bool) {
	for _, other := range existing {
		if other.RoomID != candidate.RoomID || !other.Active() {
			continue
		}

		if candidate.ID != 0 && other.ID == candidate.ID {
			continue
		}

		if Overlaps(candidate.CheckIn, candidate.CheckOut, other.CheckIn, other.CheckOut) {
			return other, true
		}
	}

	return Booking{}, false
}
