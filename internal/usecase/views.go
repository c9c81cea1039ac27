package usecase

import (
	"time"

	"venue-pricing/internal/domain/pricing"
)

// Read models for the estimate surface.

type LineItemView struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	SubDescription string `json:"subDescription,omitempty"`
	CostCents      int64  `json:"costCents"`
	IsRequired     bool   `json:"isRequired"`
	IsEditable     bool   `json:"isEditable"`
}

type RoomEstimateView struct {
	RoomID          string         `json:"roomId"`
	BasePriceCents  int64          `json:"basePriceCents"`
	DaytimeHours    int            `json:"daytimeHours"`
	DaytimeCents    int64          `json:"daytimePriceCents"`
	EveningHours    int            `json:"eveningHours"`
	EveningCents    int64          `json:"eveningPriceCents"`
	FullDay         bool           `json:"fullDay"`
	FullDayCents    int64          `json:"fullDayPriceCents,omitempty"`
	AppliedRate     int64          `json:"appliedRateCents"`
	RateKind        string         `json:"rateType"`
	AdditionalItems []LineItemView `json:"additionalCosts"`
	TotalCostCents  int64          `json:"totalCostCents"`
}

type EstimateView struct {
	BookingID    string             `json:"bookingId"`
	Date         string             `json:"date"`
	Start        *time.Time         `json:"start,omitempty"`
	End          *time.Time         `json:"end,omitempty"`
	Rooms        []RoomEstimateView `json:"rooms"`
	SlotItems    []LineItemView     `json:"perSlotCosts"`
	SlotTotal    int64              `json:"slotTotalCents"`
	ErrorMessage string             `json:"error,omitempty"`
}

type BatchView struct {
	CostEstimates     []EstimateView            `json:"costEstimates"`
	GrandTotalCents   int64                     `json:"grandTotalCents"`
	TaxCents          int64                     `json:"taxCents"`
	TotalWithTaxCents int64                     `json:"totalWithTaxCents"`
	CustomLineItems   map[string][]LineItemView `json:"customLineItems"`
	GeneratedAt       time.Time                 `json:"generatedAt"`
}

type RoomRulesView struct {
	RoomID         string   `json:"roomId"`
	PricedWeekdays []string `json:"pricedWeekdays"`
}

func NewBatchView(batch *pricing.PricedBatch, generatedAt time.Time) *BatchView {
	estimates := make([]EstimateView, 0, len(batch.Estimates))
	custom := map[string][]LineItemView{}

	for _, est := range batch.Estimates {
		estimates = append(estimates, newEstimateView(est))
		if len(est.CustomItems) > 0 {
			custom[est.BookingID] = newLineItemViews(est.CustomItems)
		}
	}

	return &BatchView{
		CostEstimates:     estimates,
		GrandTotalCents:   batch.GrandTotal.Cents(),
		TaxCents:          batch.Tax.Cents(),
		TotalWithTaxCents: batch.TotalWithTax.Cents(),
		CustomLineItems:   custom,
		GeneratedAt:       generatedAt,
	}
}

func newEstimateView(est pricing.BookingEstimate) EstimateView {
	view := EstimateView{
		BookingID:    est.BookingID,
		Date:         est.Date,
		Rooms:        make([]RoomEstimateView, 0, len(est.Rooms)),
		SlotItems:    newLineItemViews(est.SlotItems),
		SlotTotal:    est.SlotTotal.Cents(),
		ErrorMessage: est.ErrorMessage,
	}
	if !est.Failed() {
		start, end := est.Start, est.End
		view.Start = &start
		view.End = &end
	}
	for _, room := range est.Rooms {
		view.Rooms = append(view.Rooms, RoomEstimateView{
			RoomID:          room.RoomID,
			BasePriceCents:  room.BasePrice.Cents(),
			DaytimeHours:    room.DaytimeHours,
			DaytimeCents:    room.DaytimePrice.Cents(),
			EveningHours:    room.EveningHours,
			EveningCents:    room.EveningPrice.Cents(),
			FullDay:         room.FullDay,
			FullDayCents:    room.FullDayPrice.Cents(),
			AppliedRate:     room.AppliedRate.Cents(),
			RateKind:        room.RateKind.String(),
			AdditionalItems: newLineItemViews(room.AdditionalItems),
			TotalCostCents:  room.TotalCost.Cents(),
		})
	}
	return view
}

func newLineItemViews(items []pricing.LineItem) []LineItemView {
	views := make([]LineItemView, 0, len(items))
	for _, it := range items {
		views = append(views, LineItemView{
			ID:             it.ID,
			Description:    it.Description,
			SubDescription: it.SubDescription,
			CostCents:      it.Cost.Cents(),
			IsRequired:     it.Required,
			IsEditable:     it.Editable,
		})
	}
	return views
}
