package pricing

import (
	"errors"
	"time"
)

var (
	ErrValidation   = errors.New("booking validation failed")
	ErrRuleNotFound = errors.New("no day rule resolvable for room")
)

// Booking is the canonical request shape for one venue slot. Start and
// End arrive as venue-local RFC3339 strings; parsing is part of
// validation so a malformed timestamp fails only its own booking.
type Booking struct {
	ID                 string
	Date               string
	RoomIDs            []string
	Start              string
	End                string
	Private            bool
	ExpectedAttendance int
	Resources          []string
}

// Window parses the booking's time window. The instants are assumed to
// be already normalized to the venue's local wall-clock time.
func (b Booking) Window() (start, end time.Time, err error) {
	start, err = parseInstant(b.Start)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("unparseable start time")
	}
	end, err = parseInstant(b.End)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("unparseable end time")
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.New("start must precede end")
	}
	return start, end, nil
}

func (b Booking) validate() error {
	if len(b.RoomIDs) == 0 {
		return errors.New("at least one room is required")
	}
	if _, _, err := b.Window(); err != nil {
		return err
	}
	return nil
}

func (b Booking) requests(resourceID string) bool {
	for _, id := range b.Resources {
		if id == resourceID {
			return true
		}
	}
	return false
}

func (b Booking) includesRoom(roomID string) bool {
	for _, id := range b.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty instant")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// Tolerate timestamps without an offset; they are venue-local.
	return time.Parse("2006-01-02T15:04:05", s)
}

// BatchRequest groups bookings by their requested ISO date.
type BatchRequest struct {
	RentalDates map[string][]Booking
}
