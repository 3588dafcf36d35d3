package client

import "weatherdash/internal/types"

// DayRow is one day of the forecast, assembled from the upstream's parallel
// daily arrays.
type DayRow struct {
	Date             string
	WeatherCode      int
	TempMax          float64
	TempMin          float64
	PrecipitationSum float64
	UvIndexMax       *float64
	WindSpeedMax     *float64
}

// DayRows transposes the forecast's parallel day-arrays into one row per
// day. Arrays shorter than the time axis leave their fields zeroed or nil.
func DayRows(forecast *types.Forecast) []DayRow {
	if forecast == nil {
		return nil
	}

	daily := forecast.Daily
	rows := make([]DayRow, len(daily.Time))
	for i, date := range daily.Time {
		row := DayRow{Date: date}
		if i < len(daily.WeatherCode) {
			row.WeatherCode = daily.WeatherCode[i]
		}
		if i < len(daily.Temperature2mMax) {
			row.TempMax = daily.Temperature2mMax[i]
		}
		if i < len(daily.Temperature2mMin) {
			row.TempMin = daily.Temperature2mMin[i]
		}
		if i < len(daily.PrecipitationSum) {
			row.PrecipitationSum = daily.PrecipitationSum[i]
		}
		if i < len(daily.UvIndexMax) {
			row.UvIndexMax = daily.UvIndexMax[i]
		}
		if i < len(daily.WindSpeed10mMax) {
			row.WindSpeedMax = daily.WindSpeed10mMax[i]
		}
		rows[i] = row
	}
	return rows
}

// PrecipitationBarPercent maps a daily precipitation sum in millimeters to a
// bar height percentage, saturating at 100.
func (r DayRow) PrecipitationBarPercent() float64 {
	pct := r.PrecipitationSum * 10
	if pct > 100 {
		return 100
	}
	return pct
}
