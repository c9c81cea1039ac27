package pricing

import (
	"time"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
)

// RoomEstimate is the fully priced share of one room in a booking.
type RoomEstimate struct {
	RoomID string

	BasePrice    money.Money
	DaytimeHours int
	DaytimePrice money.Money
	EveningHours int
	EveningPrice money.Money
	FullDay      bool
	FullDayPrice money.Money

	AppliedRate money.Money
	RateKind    catalog.RateKind

	AdditionalItems []LineItem
	TotalCost       money.Money
}

// BookingEstimate is the priced result of one booking. Created fresh
// per pricing run and never mutated afterwards. A booking that failed
// validation or rule lookup is represented by the error-carrying
// variant with a zero slot total.
type BookingEstimate struct {
	BookingID string
	Date      string
	Start     time.Time
	End       time.Time

	Rooms       []RoomEstimate
	SlotItems   []LineItem
	CustomItems []LineItem

	SlotTotal money.Money

	// ErrorMessage is set only on the failure variant.
	ErrorMessage string
}

func (e BookingEstimate) Failed() bool {
	return e.ErrorMessage != ""
}

// NewFailedEstimate replaces an unpriceable booking in batch output.
func NewFailedEstimate(b Booking, err error) BookingEstimate {
	return BookingEstimate{
		BookingID:    b.ID,
		Date:         b.Date,
		ErrorMessage: err.Error(),
	}
}

// PricedBatch rolls every booking of a request into one total.
type PricedBatch struct {
	Estimates    []BookingEstimate
	GrandTotal   money.Money
	Tax          money.Money
	TotalWithTax money.Money
}
