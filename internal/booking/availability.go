package booking

// FreeForStay reports whether none of the given bookings blocks the stay.
// Only confirmed and checked-in bookings hold a room; the repository applies
// the same predicate in SQL for the live path. Useful for calendar views that
// already hold a room's bookings in memory.
func FreeForStay(bookings []*Booking, stay StayInterval) bool {
	for _, b := range bookings {
		if !b.Status.Blocks() {
			continue
		}
		if b.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}
