package types

// Forecast is the current-conditions + 7-day daily forecast payload returned
// by the Open-Meteo forecast API. The shape mirrors the upstream response so
// the API layer can forward it to clients unmodified; the daily arrays are
// parallel, indexed by day offset.
type Forecast struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	Elevation            float64      `json:"elevation"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	UtcOffsetSeconds     int          `json:"utc_offset_seconds"`
	CurrentUnits         CurrentUnits `json:"current_units"`
	Current              Current      `json:"current"`
	DailyUnits           DailyUnits   `json:"daily_units"`
	Daily                Daily        `json:"daily"`
}

// Current holds point-in-time conditions.
type Current struct {
	Time                string  `json:"time"`
	Interval            int     `json:"interval"`
	Temperature2m       float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	Precipitation       float64 `json:"precipitation"`
}

// CurrentUnits labels the units of each Current field.
type CurrentUnits struct {
	Time                string `json:"time"`
	Interval            string `json:"interval"`
	Temperature2m       string `json:"temperature_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	RelativeHumidity2m  string `json:"relative_humidity_2m"`
	WindSpeed10m        string `json:"wind_speed_10m"`
	Precipitation       string `json:"precipitation"`
}

// Daily holds the 7-day daily summaries as parallel arrays. UvIndexMax and
// WindSpeed10mMax entries may be null for some locations, so they are
// pointers rather than plain floats.
type Daily struct {
	Time             []string   `json:"time"`
	WeatherCode      []int      `json:"weather_code"`
	Temperature2mMax []float64  `json:"temperature_2m_max"`
	Temperature2mMin []float64  `json:"temperature_2m_min"`
	PrecipitationSum []float64  `json:"precipitation_sum"`
	UvIndexMax       []*float64 `json:"uv_index_max"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"`
}

// DailyUnits labels the units of each Daily array.
type DailyUnits struct {
	Time             string `json:"time"`
	WeatherCode      string `json:"weather_code"`
	Temperature2mMax string `json:"temperature_2m_max"`
	Temperature2mMin string `json:"temperature_2m_min"`
	PrecipitationSum string `json:"precipitation_sum"`
	UvIndexMax       string `json:"uv_index_max"`
	WindSpeed10mMax  string `json:"wind_speed_10m_max"`
}
