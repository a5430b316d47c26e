package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/balkashynov/prodo/internal/models"
)

// DefaultEndpoint is the public Open-Meteo forecast API
const DefaultEndpoint = "https://api.open-meteo.com/v1/forecast"

const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"

// OpenMeteo reads current conditions from an Open-Meteo compatible API
type OpenMeteo struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
}

// NewOpenMeteo queries endpoint; an empty endpoint uses DefaultEndpoint and
// a nil client uses http.DefaultClient
func NewOpenMeteo(endpoint string, client *http.Client) *OpenMeteo {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenMeteo{endpoint: endpoint, client: client, now: time.Now}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current fetches the conditions at loc
func (o *OpenMeteo) Current(ctx context.Context, loc Location) (models.WeatherSnapshot, error) {
	u, err := url.Parse(o.endpoint)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("invalid weather endpoint: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', 4, 64))
	q.Set("current", currentFields)
	q.Set("wind_speed_unit", "kmh")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherSnapshot{}, fmt.Errorf("weather request failed: status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition, icon := describeCode(body.Current.WeatherCode)
	return models.WeatherSnapshot{
		Temperature: body.Current.Temperature,
		Condition:   condition,
		Icon:        icon,
		Humidity:    int(body.Current.Humidity + 0.5),
		WindSpeed:   body.Current.WindSpeed,
		FetchedAt:   o.now(),
	}, nil
}

// describeCode maps a WMO weather interpretation code to a label and icon
func describeCode(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear", "☀️"
	case code <= 2:
		return "Partly Cloudy", "⛅"
	case code == 3:
		return "Cloudy", "☁️"
	case code == 45 || code == 48:
		return "Fog", "🌫"
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return "Rain", "🌧"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "Snow", "❄️"
	case code >= 95:
		return "Thunderstorm", "⛈"
	default:
		return "Unknown", "🌡"
	}
}
