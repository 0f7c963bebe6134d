// Package availability is the single place where stay ranges are compared.
// Reservation checks, the occupancy query and the booked-dates listing all
// use the half-open rule defined here.
package availability

import (
	"fmt"
	"slices"
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Occupancy is an existing line item as seen by the index.
type Occupancy struct {
	BookingID uuid.UUID
	RoomID    uuid.UUID
	Stay      booking.StayRange
	Status    booking.Status
}

type Conflict struct {
	RoomID    uuid.UUID
	Requested booking.StayRange
	// BookingID is nil when the clash is between two lines of the same request.
	BookingID uuid.UUID
}

func (c Conflict) String() string {
	return fmt.Sprintf("room %s is not available for %s", c.RoomID, c.Requested)
}

// Overlaps implements [a1,a2) x [b1,b2) intersection: a1 < b2 && b1 < a2.
// A checkout on the same day as the next check-in does not overlap.
func Overlaps(a, b booking.StayRange) bool {
	return a.CheckIn().Before(b.CheckOut()) && b.CheckIn().Before(a.CheckOut())
}

// HasConflict reports whether any occupancy of roomID in one of statuses
// overlaps stay. With no statuses the inventory-holding ones are used.
func HasConflict(existing []Occupancy, roomID uuid.UUID, stay booking.StayRange, statuses ...booking.Status) bool {
	_, found := findConflict(existing, roomID, stay, statuses)
	return found
}

// FirstConflict checks every requested line against existing occupancies and
// against the other lines of the same request.
func FirstConflict(existing []Occupancy, items []booking.LineItem) (Conflict, bool) {
	for i, item := range items {
		if occ, found := findConflict(existing, item.RoomID(), item.Stay(), nil); found {
			return Conflict{RoomID: item.RoomID(), Requested: item.Stay(), BookingID: occ.BookingID}, true
		}
		for _, other := range items[:i] {
			if other.RoomID() == item.RoomID() && Overlaps(other.Stay(), item.Stay()) {
				return Conflict{RoomID: item.RoomID(), Requested: item.Stay()}, true
			}
		}
	}
	return Conflict{}, false
}

// Window returns the smallest [from, to) that covers every item.
func Window(items []booking.LineItem) (from, to time.Time) {
	for i, item := range items {
		in, out := item.Stay().CheckIn(), item.Stay().CheckOut()
		if i == 0 || in.Before(from) {
			from = in
		}
		if i == 0 || out.After(to) {
			to = out
		}
	}
	return from, to
}

// BookedNights lists the distinct nights on or after from that are held by
// an inventory-holding occupancy, in ascending order.
func BookedNights(existing []Occupancy, from time.Time) []time.Time {
	seen := make(map[int64]struct{})
	nights := make([]time.Time, 0)
	for _, occ := range existing {
		if !occ.Status.HoldsInventory() {
			continue
		}
		for night := occ.Stay.CheckIn(); night.Before(occ.Stay.CheckOut()); night = night.AddDate(0, 0, 1) {
			if night.Before(from) {
				continue
			}
			if _, dup := seen[night.Unix()]; dup {
				continue
			}
			seen[night.Unix()] = struct{}{}
			nights = append(nights, night)
		}
	}
	slices.SortFunc(nights, func(a, b time.Time) int { return a.Compare(b) })
	return nights
}

func findConflict(existing []Occupancy, roomID uuid.UUID, stay booking.StayRange, statuses []booking.Status) (Occupancy, bool) {
	if len(statuses) == 0 {
		statuses = booking.InventoryStatuses()
	}
	for _, occ := range existing {
		if occ.RoomID != roomID || !slices.Contains(statuses, occ.Status) {
			continue
		}
		if Overlaps(occ.Stay, stay) {
			return occ, true
		}
	}
	return Occupancy{}, false
}
