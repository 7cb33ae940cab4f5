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

func newTestWeatherService(t *testing.T, handler http.HandlerFunc) *WeatherService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := NewWeatherService(config.WeatherConfig{APIKey: "test-key"}, zap.NewNop())
	s.baseURL = server.URL
	return s
}

const clearSkyPayload = `{
	"weather": [{"id": 800, "main": "Clear", "description": "निरभ्र आकाश"}],
	"main": {"temp": 31.6, "humidity": 45},
	"wind": {"speed": 3.5}
}`

func TestCurrentByDistrict(t *testing.T) {
	var gotQuery map[string]string
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"units": r.URL.Query().Get("units"),
			"lang":  r.URL.Query().Get("lang"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Write([]byte(clearSkyPayload))
	})

	data := s.Current(context.Background(), "Nashik", nil, nil)

	assert.Equal(t, "Nashik,IN", gotQuery["q"])
	assert.Equal(t, "metric", gotQuery["units"])
	assert.Equal(t, "mr", gotQuery["lang"])
	assert.Equal(t, "test-key", gotQuery["appid"])

	assert.Equal(t, 32, data.Temp)
	assert.Equal(t, "Clear", data.Condition)
	assert.Equal(t, 45, data.Humidity)
	assert.Equal(t, float64(13), data.WindSpeed) // 3.5 m/s -> 12.6 km/h rounded
	require.Len(t, data.Forecast, 2)
	assert.Equal(t, models.ForecastDay{Day: "उद्या", Temp: 33, Icon: "Sun"}, data.Forecast[0])
	assert.Equal(t, models.ForecastDay{Day: "परवा", Temp: 31, Icon: "Cloud"}, data.Forecast[1])
}

func TestCurrentDefaultsToPune(t *testing.T) {
	var gotCity string
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		gotCity = r.URL.Query().Get("q")
		w.Write([]byte(clearSkyPayload))
	})

	s.Current(context.Background(), "", nil, nil)
	assert.Equal(t, "Pune,IN", gotCity)
}

func TestCurrentByCoordinates(t *testing.T) {
	var hasLatLon bool
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		hasLatLon = r.URL.Query().Get("lat") != "" && r.URL.Query().Get("lon") != ""
		assert.Empty(t, r.URL.Query().Get("q"))
		w.Write([]byte(clearSkyPayload))
	})

	lat, lon := 18.52, 73.85
	s.Current(context.Background(), "Nashik", &lat, &lon)
	assert.True(t, hasLatLon)
}

func TestCurrentFallbackOnFeedError(t *testing.T) {
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	data := s.Current(context.Background(), "Nashik", nil, nil)
	assert.Equal(t, FallbackWeather(), data)
	assert.Equal(t, 32, data.Temp)
	assert.Equal(t, "निरभ्र आकाश", data.Description)
}

func TestCurrentFallbackWithoutAPIKey(t *testing.T) {
	s := NewWeatherService(config.WeatherConfig{}, zap.NewNop())
	assert.Equal(t, FallbackWeather(), s.Current(context.Background(), "Nashik", nil, nil))
}

type captureNotifier struct {
	titles []string
	bodies []string
}

func (n *captureNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return nil
}

func TestFarmAlertFires(t *testing.T) {
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"weather": [{"id": 211, "main": "Thunderstorm", "description": "गडगडाट"}],
			"main": {"temp": 30, "humidity": 80},
			"wind": {"speed": 8}
		}`))
	})

	notifier := &captureNotifier{}
	alert := s.FarmAlert(context.Background(), 18.52, 73.85, notifier)

	require.NotNil(t, alert)
	assert.Equal(t, models.AlertDanger, alert.Type)
	require.Len(t, notifier.bodies, 1)
	assert.Equal(t, alert.Message, notifier.bodies[0])
}

func TestFarmAlertCalmConditions(t *testing.T) {
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(clearSkyPayload))
	})

	notifier := &captureNotifier{}
	assert.Nil(t, s.FarmAlert(context.Background(), 18.52, 73.85, notifier))
	assert.Empty(t, notifier.bodies)
}

func TestFarmAlertFetchFailure(t *testing.T) {
	s := newTestWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Nil(t, s.FarmAlert(context.Background(), 18.52, 73.85, nil))
}
