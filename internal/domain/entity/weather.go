// Package entity contains the core business objects of the project.
package entity

import "time"

// Location is an opaque coordinate pair handed to the backend. The address is
// optional and comes from the device's reverse geocoder when available.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// CurrentConditions describes the weather at this moment.
type CurrentConditions struct {
	Temperature float64 // Degrees Celsius.
	Humidity    float64 // Relative humidity, percent.
	WindSpeed   float64 // Kilometers per hour.
	Condition   string
	Icon        string
}

// ForecastDay is one day of the forward forecast.
type ForecastDay struct {
	Date          time.Time
	MinTemp       float64
	MaxTemp       float64
	Condition     string
	Icon          string
	Precipitation int // Chance of precipitation, percent.
}

// AlertType classifies a weather alert by urgency.
type AlertType string

const (
	// AlertWarning indicates conditions posing a threat are occurring or imminent.
	AlertWarning AlertType = "warning"
	// AlertWatch indicates conditions are favorable for a hazard.
	AlertWatch AlertType = "watch"
	// AlertAdvisory indicates less serious conditions worth attention.
	AlertAdvisory AlertType = "advisory"
)

// WeatherAlert is an active advisory attached to a forecast.
type WeatherAlert struct {
	ID          string
	Type        AlertType
	Title       string
	Description string
	Severity    Severity
	StartTime   time.Time
	EndTime     time.Time
}

// WeatherData bundles everything the weather screen renders for one location.
type WeatherData struct {
	Location    string
	Current     CurrentConditions
	Forecast    []ForecastDay
	Alerts      []WeatherAlert
	FarmingTips []string
}
