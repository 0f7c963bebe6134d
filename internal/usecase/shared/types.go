package shared

// Minimal snapshot of a guest's booking history used as risk features
type UserBookingStats struct {
	TotalBookings     int64
	CancelledBookings int64
}

func (s UserBookingStats) CancelRate() float64 {
	if s.TotalBookings == 0 {
		return 0
	}
	return float64(s.CancelledBookings) / float64(s.TotalBookings)
}
