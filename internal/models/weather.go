package models

// Condition is the weather condition block of the forecast API.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// WeatherLocation is the location the forecast was resolved for.
type WeatherLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

// CurrentWeather holds current conditions.
type CurrentWeather struct {
	TempC      float64   `json:"temp_c"`
	TempF      float64   `json:"temp_f"`
	IsDay      int       `json:"is_day"`
	Condition  Condition `json:"condition"`
	WindKph    float64   `json:"wind_kph"`
	WindDir    string    `json:"wind_dir"`
	PressureMb float64   `json:"pressure_mb"`
	PrecipMm   float64   `json:"precip_mm"`
	Humidity   int       `json:"humidity"`
	Cloud      int       `json:"cloud"`
	FeelsLikeC float64   `json:"feelslike_c"`
	VisKm      float64   `json:"vis_km"`
	UV         float64   `json:"uv"`
}

// ForecastDay is a single forecast day.
type ForecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC          float64   `json:"maxtemp_c"`
		MinTempC          float64   `json:"mintemp_c"`
		AvgTempC          float64   `json:"avgtemp_c"`
		TotalPrecipMm     float64   `json:"totalprecip_mm"`
		AvgHumidity       float64   `json:"avghumidity"`
		DailyChanceOfRain int       `json:"daily_chance_of_rain"`
		Condition         Condition `json:"condition"`
		UV                float64   `json:"uv"`
	} `json:"day"`
}

// WeatherSnapshot is cached and replaced as a whole, never merged.
type WeatherSnapshot struct {
	Location WeatherLocation `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// Today returns the first forecast day if present.
func (w WeatherSnapshot) Today() (ForecastDay, bool) {
	if len(w.Forecast.ForecastDay) == 0 {
		return ForecastDay{}, false
	}
	return w.Forecast.ForecastDay[0], true
}
