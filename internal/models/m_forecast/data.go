package m_forecast

import "time"

// Data is the weather forecast record edited in the demo form. The three
// tagged fields participate in dirty tracking; TemperatureF is derived
// from TemperatureC and deliberately untracked, so edits to it are
// invisible to the tracker.
type Data struct {
	Date         time.Time `track:"date"`
	TemperatureC int64     `track:"temperature_c"`
	Summary      string    `track:"summary"`
	TemperatureF int64
}

// Summaries are the descriptions the demo picks from, coldest first.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// New creates a forecast record with TemperatureF derived.
func New(date time.Time, temperatureC int64, summary string) *Data {
	d := &Data{Date: date, TemperatureC: temperatureC, Summary: summary}
	d.RecomputeF()
	return d
}

// RecomputeF refreshes the derived Fahrenheit reading.
func (d *Data) RecomputeF() {
	d.TemperatureF = 32 + int64(float64(d.TemperatureC)/0.5556)
}
