package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-smartagro/config"
	"go-smartagro/models"
)

func newTestMarketService(t *testing.T, handler http.HandlerFunc) *MarketService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := NewMarketService(config.MarketConfig{APIKey: "test-key", State: "Maharashtra"}, zap.NewNop())
	s.baseURL = server.URL
	return s
}

func TestPricesFromLiveFeed(t *testing.T) {
	var gotQuery map[string]string
	s := newTestMarketService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"api-key":            r.URL.Query().Get("api-key"),
			"format":             r.URL.Query().Get("format"),
			"filters[state]":     r.URL.Query().Get("filters[state]"),
			"limit":              r.URL.Query().Get("limit"),
			"sort[arrival_date]": r.URL.Query().Get("sort[arrival_date]"),
		}
		w.Write([]byte(`{"records":[
			{"commodity":"Onion","district":"Nashik","min_price":"1000","max_price":"1216","modal_price":"1200"},
			{"commodity":"Wheat","district":"Pune","min_price":"2500","max_price":"2600","modal_price":"2550"}
		]}`))
	})

	prices := s.Prices(context.Background(), false)
	require.Len(t, prices, 2)

	assert.Equal(t, "कांदा", prices[0].Commodity)
	assert.Equal(t, "Nashik", prices[0].District)
	assert.Equal(t, models.TrendUp, prices[0].Trend)
	assert.Equal(t, "गहू", prices[1].Commodity)
	assert.Equal(t, models.TrendStable, prices[1].Trend)

	assert.Equal(t, "test-key", gotQuery["api-key"])
	assert.Equal(t, "json", gotQuery["format"])
	assert.Equal(t, "Maharashtra", gotQuery["filters[state]"])
	assert.Equal(t, "50", gotQuery["limit"])
	assert.Equal(t, "desc", gotQuery["sort[arrival_date]"])
}

func TestPricesServedFromCache(t *testing.T) {
	calls := 0
	s := newTestMarketService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"records":[{"commodity":"Onion","district":"Nashik","min_price":"1","max_price":"2","modal_price":"2"}]}`))
	})

	first := s.Prices(context.Background(), false)
	second := s.Prices(context.Background(), false)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	s.Prices(context.Background(), true)
	assert.Equal(t, 2, calls)
}

func TestPricesFallbackWhenFeedEmpty(t *testing.T) {
	s := newTestMarketService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[]}`))
	})

	prices := s.Prices(context.Background(), false)
	require.Len(t, prices, 5)
	assert.Equal(t, "कांदा", prices[0].Commodity)
}

func TestPricesFallbackWhenFeedErrors(t *testing.T) {
	s := newTestMarketService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	prices := s.Prices(context.Background(), false)
	assert.Len(t, prices, 5)
}

func TestPricesFallbackWithoutAPIKey(t *testing.T) {
	s := NewMarketService(config.MarketConfig{State: "Maharashtra"}, zap.NewNop())
	prices := s.Prices(context.Background(), false)
	assert.Len(t, prices, 5)
}

func TestFallbackMarketPricesJitter(t *testing.T) {
	base := map[string]float64{
		"कांदा": 2200, "कापूस": 7400, "सोयाबीन": 4500, "तूर": 9800, "गहू": 2600,
	}
	trends := map[string]string{
		"कांदा": models.TrendUp, "कापूस": models.TrendStable, "सोयाबीन": models.TrendDown,
		"तूर": models.TrendUp, "गहू": models.TrendStable,
	}

	prices := FallbackMarketPrices()
	require.Len(t, prices, 5)
	for _, price := range prices {
		expected, ok := base[price.Commodity]
		require.True(t, ok, price.Commodity)
		assert.InDelta(t, expected, price.ModalPrice, 100)
		assert.Equal(t, trends[price.Commodity], price.Trend)
	}
}
