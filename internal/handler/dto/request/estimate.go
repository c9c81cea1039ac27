package request

import (
	"venue-pricing/internal/domain/pricing"
)

// PriceBatchRequest is the pricing request body: bookings grouped by
// ISO date. Per-booking field validation happens in the domain so one
// malformed booking never rejects the whole batch.
type PriceBatchRequest struct {
	RentalDates map[string][]BookingRequest `json:"rentalDates" binding:"required"`
}

type BookingRequest struct {
	ID                 string   `json:"id,omitempty"`
	Rooms              []string `json:"rooms"`
	Start              string   `json:"start"`
	End                string   `json:"end"`
	IsPrivate          bool     `json:"isPrivate"`
	ExpectedAttendance int      `json:"expectedAttendance"`
	Resources          []string `json:"resources"`
}

func (r PriceBatchRequest) ToDomain() pricing.BatchRequest {
	rentalDates := make(map[string][]pricing.Booking, len(r.RentalDates))
	for date, bookings := range r.RentalDates {
		out := make([]pricing.Booking, 0, len(bookings))
		for _, b := range bookings {
			out = append(out, pricing.Booking{
				ID:                 b.ID,
				Date:               date,
				RoomIDs:            b.Rooms,
				Start:              b.Start,
				End:                b.End,
				Private:            b.IsPrivate,
				ExpectedAttendance: b.ExpectedAttendance,
				Resources:          b.Resources,
			})
		}
		rentalDates[date] = out
	}
	return pricing.BatchRequest{RentalDates: rentalDates}
}
