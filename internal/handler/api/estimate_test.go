//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venue-pricing/internal/domain/pricing"
	"venue-pricing/internal/handler/api"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEstimateUseCase struct {
	batchView  *usecase.BatchView
	roomsViews []usecase.RoomRulesView
	err        error

	gotRequest pricing.BatchRequest
}

func (s *stubEstimateUseCase) PriceBatch(_ context.Context, req pricing.BatchRequest) (*usecase.BatchView, error) {
	s.gotRequest = req
	return s.batchView, s.err
}

func (s *stubEstimateUseCase) ListRooms(_ context.Context) ([]usecase.RoomRulesView, error) {
	return s.roomsViews, s.err
}

func newTestRouter(stub *stubEstimateUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := api.NewEstimateHandler(stub)
	engine.POST("/api/estimates", handler.PriceBatch)
	engine.GET("/api/catalog/rooms", handler.ListRooms)
	return engine
}

func performRequest(engine *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestPriceBatchHandler(t *testing.T) {
	validBody := []byte(`{
		"rentalDates": {
			"2026-08-31": [{
				"rooms": ["main-hall"],
				"start": "2026-08-31T10:00:00Z",
				"end": "2026-08-31T15:00:00Z",
				"resources": ["food"]
			}]
		}
	}`)

	t.Run("returns the priced batch", func(t *testing.T) {
		stub := &stubEstimateUseCase{
			batchView: &usecase.BatchView{
				CostEstimates:     []usecase.EstimateView{{BookingID: "bk-1", SlotTotal: 40000}},
				GrandTotalCents:   40000,
				TaxCents:          3300,
				TotalWithTaxCents: 43300,
				CustomLineItems:   map[string][]usecase.LineItemView{},
				GeneratedAt:       time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			},
		}
		rec := performRequest(newTestRouter(stub), http.MethodPost, "/api/estimates", validBody)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp usecase.BatchView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(40000), resp.GrandTotalCents)
		assert.Equal(t, int64(3300), resp.TaxCents)
		require.Len(t, resp.CostEstimates, 1)
		assert.Equal(t, "bk-1", resp.CostEstimates[0].BookingID)

		// The date key becomes the booking date in the domain request.
		bookings := stub.gotRequest.RentalDates["2026-08-31"]
		require.Len(t, bookings, 1)
		assert.Equal(t, "2026-08-31", bookings[0].Date)
		assert.Equal(t, []string{"main-hall"}, bookings[0].RoomIDs)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		rec := performRequest(newTestRouter(&stubEstimateUseCase{}), http.MethodPost, "/api/estimates", []byte(`{`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing rentalDates is a bad request", func(t *testing.T) {
		rec := performRequest(newTestRouter(&stubEstimateUseCase{}), http.MethodPost, "/api/estimates", []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("catalog outage maps to service unavailable", func(t *testing.T) {
		stub := &stubEstimateUseCase{
			err: errs.Mark(errs.New("connection refused"), usecase.ErrCatalogUnavailable),
		}
		rec := performRequest(newTestRouter(stub), http.MethodPost, "/api/estimates", validBody)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unexpected errors map to internal server error", func(t *testing.T) {
		stub := &stubEstimateUseCase{err: errs.New("boom")}
		rec := performRequest(newTestRouter(stub), http.MethodPost, "/api/estimates", validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListRoomsHandler(t *testing.T) {
	t.Run("returns the priced rooms", func(t *testing.T) {
		stub := &stubEstimateUseCase{
			roomsViews: []usecase.RoomRulesView{
				{RoomID: "main-hall", PricedWeekdays: []string{"all", "monday"}},
			},
		}
		rec := performRequest(newTestRouter(stub), http.MethodGet, "/api/catalog/rooms", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "main-hall")
	})

	t.Run("catalog outage maps to service unavailable", func(t *testing.T) {
		stub := &stubEstimateUseCase{
			err: errs.Mark(errs.New("connection refused"), usecase.ErrCatalogUnavailable),
		}
		rec := performRequest(newTestRouter(stub), http.MethodGet, "/api/catalog/rooms", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
