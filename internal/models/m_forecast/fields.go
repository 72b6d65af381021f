package m_forecast

// Field name constants for the weather forecast record.
// These provide type-safe field references and prevent typos.
const (
	RecordName = "weather_forecast"

	Date         = "date"
	TemperatureC = "temperature_c"
	Summary      = "summary"
)
