package pricing

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
)

// PriceBatch prices every booking of every requested date. Bookings are
// independent over the read-only snapshot, so each one is priced in its
// own goroutine with results collected into an index-stable slice and
// summed afterwards. A failure pricing one booking becomes an
// error-carrying estimate and never aborts its siblings.
func (p *Pricer) PriceBatch(req BatchRequest, snap *catalog.Snapshot) *PricedBatch {
	bookings := orderedBookings(req)

	estimates := make([]BookingEstimate, len(bookings))
	var wg sync.WaitGroup
	for i, b := range bookings {
		wg.Add(1)
		go func(i int, b Booking) {
			defer wg.Done()
			est, err := p.PriceBooking(b, snap)
			if err != nil {
				estimates[i] = NewFailedEstimate(b, err)
				return
			}
			estimates[i] = *est
		}(i, b)
	}
	wg.Wait()

	var grand money.Money
	for _, est := range estimates {
		if est.Failed() {
			continue
		}
		grand = grand.Add(est.SlotTotal)
	}

	taxes := newTaxTable(p.policy.TaxRate)
	tax := taxes.For(grand)

	return &PricedBatch{
		Estimates:    estimates,
		GrandTotal:   grand,
		Tax:          tax,
		TotalWithTax: grand.Add(tax),
	}
}

// orderedBookings flattens the per-date map into a deterministic slice:
// dates sorted, bookings in request order within a date. Missing booking
// ids are assigned here so a booking that later fails still carries the
// same id in its estimate and error message.
func orderedBookings(req BatchRequest) []Booking {
	dates := make([]string, 0, len(req.RentalDates))
	for date := range req.RentalDates {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var out []Booking
	for _, date := range dates {
		for _, b := range req.RentalDates[date] {
			if b.Date == "" {
				b.Date = date
			}
			if b.ID == "" {
				b.ID = uuid.NewString()
			}
			out = append(out, b)
		}
	}
	return out
}

// taxTable memoizes tax by grand-total value within one batch run. Tax
// is a pure function of the total, so the cache is safe under
// concurrent use.
type taxTable struct {
	mu   sync.Mutex
	rate float64
	memo map[int64]money.Money
}

func newTaxTable(rate float64) *taxTable {
	return &taxTable{rate: rate, memo: map[int64]money.Money{}}
}

func (t *taxTable) For(total money.Money) money.Money {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tax, ok := t.memo[total.Cents()]; ok {
		return tax
	}
	tax := total.ApplyRate(t.rate)
	t.memo[total.Cents()] = tax
	return tax
}
