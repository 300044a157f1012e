package netatmo

import "encoding/json"

// Field names follow the getstationsdata payload.
// See https://dev.netatmo.com/apidocumentation/weather.

const timeUTCKey = "time_utc"

// Dashboard is one timestamped snapshot of sensor readings for a station or
// module. A source without a dashboard decodes as nil; lookups on a nil
// Dashboard resolve to "no value", never an error.
type Dashboard map[string]float64

// Value returns the named reading, or nil if the snapshot does not have it.
func (d Dashboard) Value(name string) *float64 {
	v, ok := d[name]
	if !ok {
		return nil
	}
	return &v
}

// Time returns the epoch timestamp shared by all readings in the snapshot,
// or nil if the snapshot has none.
func (d Dashboard) Time() *int64 {
	v, ok := d[timeUTCKey]
	if !ok {
		return nil
	}
	t := int64(v)
	return &t
}

// UnmarshalJSON keeps the numeric readings and drops everything else; real
// dashboards carry trend strings and the like alongside the numbers.
func (d *Dashboard) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m := make(Dashboard, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			m[k] = f
		}
	}
	*d = m
	return nil
}

// Module is a satellite sensor unit attached to a station. RFStatus and
// BatteryVP live on the module itself, not in the dashboard; their meaning
// per module type is documented in the Netatmo API reference.
type Module struct {
	ID            string    `json:"_id"`
	ModuleName    string    `json:"module_name"`
	Reachable     bool      `json:"reachable"`
	DataType      []string  `json:"data_type"`
	RFStatus      *float64  `json:"rf_status"`
	BatteryVP     *float64  `json:"battery_vp"`
	DashboardData Dashboard `json:"dashboard_data"`
}

// HasCapability reports whether the module declares the given sensor
// capability in its data_type list.
func (m Module) HasCapability(tag string) bool {
	for _, t := range m.DataType {
		if t == tag {
			return true
		}
	}
	return false
}

// Station is a base weather-station unit with its own sensors and zero or
// more attached modules.
type Station struct {
	ID            string    `json:"_id"`
	ModuleName    string    `json:"module_name"`
	StationName   string    `json:"station_name"`
	DataType      []string  `json:"data_type"`
	DashboardData Dashboard `json:"dashboard_data"`
	Modules       []Module  `json:"modules"`
}
