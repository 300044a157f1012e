package metrics

// Metric names emitted by the extractor. This vocabulary is fixed; dashboards
// and alarms downstream key on it.
const (
	MetricTemperature    = "Temperature"
	MetricCO2            = "CO2"
	MetricHumidity       = "Humidity"
	MetricNoise          = "Noise"
	MetricAirPressure    = "Air_Pressure"
	MetricSignalStrength = "Signal_Strength"
	MetricBatteryStatus  = "Battery_Status"
	MetricRain           = "Rain"
	MetricRain1Hour      = "Rain_1_hour"
	MetricRain24Hours    = "Rain_24_hours"
)

// Record is one normalized reading, ready for publication. A Record belongs
// to exactly one station or module at one snapshot instant. Value and
// Timestamp are nil when the source had no reading; publication carries such
// records through rather than dropping them.
type Record struct {
	MetricName string
	ModuleName string // dimension value: the owning source's display name
	Value      *float64
	Timestamp  *int64 // unix seconds
}
