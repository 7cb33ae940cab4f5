package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"go-smartagro/config"
	"go-smartagro/models"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	weatherHTTPTimeout = 15 * time.Second
	defaultDistrict    = "Pune"
)

// Notifier delivers farm alert notifications to the user's device.
// Delivery is best-effort; the alert banner renders regardless.
type Notifier interface {
	Notify(title, body string) error
}

// NopNotifier discards notifications. Used when the user has not
// granted notification permission.
type NopNotifier struct{}

func (NopNotifier) Notify(title, body string) error { return nil }

// LogNotifier records notifications in the service log. Stands in
// until a push channel is wired to the mobile client.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(title, body string) error {
	n.Logger.Info("notification", zap.String("title", title), zap.String("body", body))
	return nil
}

// WeatherService fetches current conditions from OpenWeather and
// derives the short forecast strip and farm alerts. A failed or
// unconfigured fetch serves a clear-sky fallback so the tile always
// renders.
type WeatherService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewWeatherService wires the service to its feed configuration.
func NewWeatherService(cfg config.WeatherConfig, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		httpClient: &http.Client{Timeout: weatherHTTPTimeout},
		baseURL:    openWeatherBaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// openWeatherResponse is the subset of the current-weather payload we
// read.
type openWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns conditions for the district, or for exact
// coordinates when lat/lon are provided. District defaults to Pune.
func (s *WeatherService) Current(ctx context.Context, district string, lat, lon *float64) models.WeatherData {
	raw, err := s.fetch(ctx, district, lat, lon)
	if err != nil {
		s.logger.Warn("openweather fetch failed, serving fallback", zap.Error(err))
		return FallbackWeather()
	}
	return buildWeatherData(raw)
}

// FarmAlert fetches conditions at the saved farm coordinates and
// classifies them into an extreme-weather alert, pushing a
// notification when one fires. Returns nil when conditions are calm or
// the fetch fails.
func (s *WeatherService) FarmAlert(ctx context.Context, lat, lon float64, notifier Notifier) *models.FarmAlert {
	raw, err := s.fetch(ctx, "", &lat, &lon)
	if err != nil {
		s.logger.Warn("farm alert fetch failed", zap.Error(err))
		return nil
	}

	conditionID := 0
	if len(raw.Weather) > 0 {
		conditionID = raw.Weather[0].ID
	}
	alert := models.ClassifyWeatherAlert(raw.Main.Temp, conditionID)
	if alert == nil {
		return nil
	}

	if notifier != nil {
		if err := notifier.Notify("स्मार्ट अ‍ॅग्रो हवामान सूचना", alert.Message); err != nil {
			s.logger.Warn("farm alert notification failed", zap.Error(err))
		}
	}
	return alert
}

// fetch runs one current-weather query. Coordinates win over district.
func (s *WeatherService) fetch(ctx context.Context, district string, lat, lon *float64) (*openWeatherResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("openweather api key not configured")
	}

	params := url.Values{}
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "mr")
	if lat != nil && lon != nil {
		params.Set("lat", fmt.Sprintf("%f", *lat))
		params.Set("lon", fmt.Sprintf("%f", *lon))
	} else {
		if district == "" {
			district = defaultDistrict
		}
		params.Set("q", district+",IN")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed openweather payload: %w", err)
	}
	return &payload, nil
}

// buildWeatherData shapes the raw payload into the tile view, deriving
// a two-day strip around today's temperature.
func buildWeatherData(raw *openWeatherResponse) models.WeatherData {
	condition := "Clear"
	description := ""
	if len(raw.Weather) > 0 {
		condition = raw.Weather[0].Main
		description = raw.Weather[0].Description
	}

	temp := int(math.Round(raw.Main.Temp))
	return models.WeatherData{
		Temp:        temp,
		Condition:   condition,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   math.Round(raw.Wind.Speed * 3.6),
		Description: description,
		Forecast: []models.ForecastDay{
			{Day: "उद्या", Temp: temp + 1, Icon: forecastIcon(condition)},
			{Day: "परवा", Temp: temp - 1, Icon: "Cloud"},
		},
	}
}

// forecastIcon maps an OpenWeather condition group to a strip icon.
func forecastIcon(condition string) string {
	switch condition {
	case "Clear":
		return "Sun"
	case "Rain", "Drizzle", "Thunderstorm":
		return "Rain"
	default:
		return "Cloud"
	}
}

// FallbackWeather is the clear-sky dataset served when the feed is
// unreachable.
func FallbackWeather() models.WeatherData {
	return models.WeatherData{
		Temp:        32,
		Condition:   "Clear",
		Description: "निरभ्र आकाश",
		Humidity:    40,
		WindSpeed:   12,
		Forecast: []models.ForecastDay{
			{Day: "उद्या", Temp: 33, Icon: "Sun"},
			{Day: "परवा", Temp: 31, Icon: "Cloud"},
		},
	}
}
