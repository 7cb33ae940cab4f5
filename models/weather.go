package models

// Alert severities for extreme farm weather.
const (
	AlertNone    = ""
	AlertDanger  = "danger"
	AlertWarning = "warning"
)

// ForecastDay is one entry of the short forecast strip.
type ForecastDay struct {
	Day  string `json:"day"`
	Temp int    `json:"temp"`
	Icon string `json:"icon"`
}

// WeatherData is the current-conditions view for one location.
type WeatherData struct {
	Temp        int           `json:"temp"`
	Condition   string        `json:"condition"`
	Humidity    int           `json:"humidity"`
	WindSpeed   float64       `json:"windSpeed"`
	Description string        `json:"description"`
	Forecast    []ForecastDay `json:"forecast"`
}

// FarmAlert is an extreme-weather notice for the farm location.
type FarmAlert struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// heavyRainCodes are the OpenWeather condition ids treated as heavy rain.
var heavyRainCodes = map[int]bool{502: true, 503: true, 504: true, 522: true}

// ClassifyWeatherAlert maps current conditions to an alert: heatwave
// (temp >= 40) and thunderstorms (condition ids 200-232) are danger,
// the heavy-rain ids are warning, everything else is no alert.
func ClassifyWeatherAlert(temp float64, conditionID int) *FarmAlert {
	if temp >= 40 {
		return &FarmAlert{
			Message: "सतर्कता: उष्णतेची लाट! भरपूर पाणी प्या आणि दुपारी बाहेर जाणे टाळा.",
			Type:    AlertDanger,
		}
	}
	if conditionID >= 200 && conditionID <= 232 {
		return &FarmAlert{
			Message: "सतर्कता: वीज कडकडाटासह वादळाची शक्यता आहे. सुरक्षित स्थळी राहा!",
			Type:    AlertDanger,
		}
	}
	if heavyRainCodes[conditionID] {
		return &FarmAlert{
			Message: "सतर्कता: तुमच्या भागात मुसळधार पाऊस पडण्याची शक्यता आहे!",
			Type:    AlertWarning,
		}
	}
	return nil
}
