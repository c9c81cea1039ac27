package pricing

import "venue-pricing/internal/domain/money"

// Well-known resource ids with billing behavior beyond their catalog
// entry. Everything else prices through the default kind dispatch.
const (
	ResourceFood      = "food"
	ResourceSecurity  = "security"
	ResourceDoorStaff = "door_staff"
	ResourcePianoTune = "piano_tuning"
	ResourceBackline  = "backline"
	ResourceProjector = "projector"
	ResourceAudioTech = "audio_technician"
	ResourceBartender = "bartender"
)

// Policy carries the venue-level pricing constants. It is resolved from
// configuration once and injected; the engine holds no globals.
type Policy struct {
	// EveningBoundaryHour is the local hour splitting daytime from
	// evening billing on the booking's start date.
	EveningBoundaryHour int

	// OpeningHour is the venue's local opening hour. Bookings starting
	// earlier incur early-opening staff, billed per started hour.
	OpeningHour   int
	EarlyOpenRate money.Money

	// ParkingLotRoomID identifies the room whose booking forces a
	// security line item.
	ParkingLotRoomID string

	// BartenderCompAttendance is the attendance above which a private
	// event's bartender is comped.
	BartenderCompAttendance int

	// AudioTechBaseHours backs the audio technician's base coverage when
	// the catalog entry does not set its own.
	AudioTechBaseHours int

	TaxRate float64
}
